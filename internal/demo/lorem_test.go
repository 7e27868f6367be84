package demo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sx/gen"
	"github.com/katalvlaran/sx/rnd"
)

func TestLoremTextShape(t *testing.T) {
	t.Parallel()

	g := LoremText()
	s := rnd.New(42)
	for i := 0; i < 20; i++ {
		text := g.Produce(s, gen.InitialDefaultBudget).Value()
		require.GreaterOrEqual(t, len(text), 3)
		require.LessOrEqual(t, len(text), 7)
		for _, para := range text {
			require.GreaterOrEqual(t, len(para), 5)
			require.LessOrEqual(t, len(para), 9)
			for _, sentence := range para {
				require.GreaterOrEqual(t, len(sentence), 7)
				require.LessOrEqual(t, len(sentence), 20)
				for j := 1; j < len(sentence); j++ {
					require.NotEqual(t, sentence[j-1], sentence[j])
				}
				for _, w := range sentence {
					require.Contains(t, Dictionary, w)
				}
			}
		}
	}
}

func TestTextString(t *testing.T) {
	t.Parallel()

	text := Text{
		{{"Lorem", "Ipsum", "Dolor"}, {"Sit", "Amet"}},
		{{"Am", "Lorem"}},
	}
	require.Equal(t, "Lorem ipsum dolor. Sit amet.\n\nAm lorem.", text.String())
}

func TestLoremRendersParagraphs(t *testing.T) {
	t.Parallel()

	out, err := Lorem(rnd.New(7), gen.InitialDefaultBudget)
	require.NoError(t, err)

	paragraphs := strings.Split(out, "\n\n")
	require.GreaterOrEqual(t, len(paragraphs), 3)
	require.LessOrEqual(t, len(paragraphs), 7)
	for _, p := range paragraphs {
		require.True(t, strings.HasSuffix(p, "."))
	}
}

func TestLoremSingleWordDictionaryFails(t *testing.T) {
	t.Parallel()

	_, err := gen.SampleBudget(rnd.New(1), LoremText(WithDictionary("Lorem")), 10)
	require.ErrorIs(t, err, gen.ErrUnsatisfied)

	out, err := Lorem(rnd.New(1), 10,
		WithDictionary("Lorem"), WithParagraphs(1, 1), WithSentences(2, 2), WithWords(1, 1))
	require.NoError(t, err)
	require.Equal(t, "Lorem. Lorem.", out)
}

func TestLoremOptions(t *testing.T) {
	t.Parallel()

	dict := []string{"a", "b"}
	cfg := newLoremConfig(WithDictionary(dict...), WithWords(2, 2), WithWords(3, 4))
	dict[0] = "z"
	require.Equal(t, []string{"a", "b"}, cfg.dictionary)
	require.Equal(t, span{lo: 3, hi: 4}, cfg.words, "last option wins")
	require.Equal(t, span{lo: defaultMinParagraphs, hi: defaultMaxParagraphs}, cfg.paragraphs)

	for _, bad := range []func(){
		func() { WithDictionary() },
		func() { WithParagraphs(0, 3) },
		func() { WithSentences(4, 3) },
		func() { WithWords(-1, 2) },
	} {
		func() {
			defer func() {
				err, ok := recover().(error)
				require.True(t, ok)
				require.ErrorIs(t, err, ErrInvalidParams)
			}()
			bad()
		}()
	}
}
