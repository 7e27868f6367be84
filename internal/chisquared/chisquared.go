// Package chisquared provides Pearson's goodness-of-fit statistic and upper
// critical values of the chi-squared distribution, for testing that sampled
// frequencies are consistent with a uniform distribution.
//
// Critical values are taken from the NIST/SEMATECH e-Handbook of Statistical
// Methods, table 1.3.6.7.4, for 1..30 degrees of freedom.
package chisquared

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoCriticalValue is returned for a (dof, probability) pair outside the table.
var ErrNoCriticalValue = errors.New("chisquared: no tabulated critical value")

// Probabilities for which critical values are tabulated, in column order.
const prob = `      0.90      0.95     0.975      0.99     0.999`

// dof      critical values for probabilities above
const rawData = `
  1          2.706     3.841     5.024     6.635    10.828
  2          4.605     5.991     7.378     9.210    13.816
  3          6.251     7.815     9.348    11.345    16.266
  4          7.779     9.488    11.143    13.277    18.467
  5          9.236    11.070    12.833    15.086    20.515
  6         10.645    12.592    14.449    16.812    22.458
  7         12.017    14.067    16.013    18.475    24.322
  8         13.362    15.507    17.535    20.090    26.125
  9         14.684    16.919    19.023    21.666    27.877
 10         15.987    18.307    20.483    23.209    29.588
 11         17.275    19.675    21.920    24.725    31.264
 12         18.549    21.026    23.337    26.217    32.910
 13         19.812    22.362    24.736    27.688    34.528
 14         21.064    23.685    26.119    29.141    36.123
 15         22.307    24.996    27.488    30.578    37.697
 16         23.542    26.296    28.845    32.000    39.252
 17         24.769    27.587    30.191    33.409    40.790
 18         25.989    28.869    31.526    34.805    42.312
 19         27.204    30.144    32.852    36.191    43.820
 20         28.412    31.410    34.170    37.566    45.315
 21         29.615    32.671    35.479    38.932    46.797
 22         30.813    33.924    36.781    40.289    48.268
 23         32.007    35.172    38.076    41.638    49.728
 24         33.196    36.415    39.364    42.980    51.179
 25         34.382    37.652    40.646    44.314    52.620
 26         35.563    38.885    41.923    45.642    54.052
 27         36.741    40.113    43.195    46.963    55.476
 28         37.916    41.337    44.461    48.278    56.892
 29         39.087    42.557    45.722    49.588    58.301
 30         40.256    43.773    46.979    50.892    59.703`

type critTable struct {
	prob    []float64
	dofProb map[int][]float64
}

var table = mustParse()

// mustParse builds the read-only table; malformed data is a build defect.
func mustParse() *critTable {
	p := strings.Fields(prob)
	t := &critTable{
		prob:    make([]float64, len(p)),
		dofProb: make(map[int][]float64),
	}
	for ix, s := range p {
		if n, err := fmt.Sscanf(s, "%g", &t.prob[ix]); err != nil || n != 1 {
			panic(fmt.Sprintf("chisquared: bad probability '%s'", s))
		}
	}
	for _, line := range strings.Split(rawData, "\n") {
		f := strings.Fields(line)
		if len(f) == 0 {
			continue
		}
		if len(f) != len(p)+1 {
			panic(fmt.Sprintf("chisquared: wrong number of fields: '%s'", line))
		}
		var dof int
		if n, err := fmt.Sscanf(f[0], "%d", &dof); err != nil || n != 1 {
			panic(fmt.Sprintf("chisquared: bad dof in '%s'", line))
		}
		crit := make([]float64, len(p))
		for ix, s := range f[1:] {
			if n, err := fmt.Sscanf(s, "%g", &crit[ix]); err != nil || n != 1 {
				panic(fmt.Sprintf("chisquared: bad critical value in '%s'", line))
			}
		}
		t.dofProb[dof] = crit
	}

	return t
}

// Probabilities returns the confidence levels that have critical values.
func Probabilities() []float64 {
	return append([]float64(nil), table.prob...)
}

// Critical returns the value x such that P(X² < x) = p for dof degrees of
// freedom.
func Critical(dof int, p float64) (float64, error) {
	crit, ok := table.dofProb[dof]
	if !ok {
		return 0, fmt.Errorf("%w: dof=%d", ErrNoCriticalValue, dof)
	}
	for ix, q := range table.prob {
		if q == p {
			return crit[ix], nil
		}
	}

	return 0, fmt.Errorf("%w: p=%g", ErrNoCriticalValue, p)
}

// Uniform returns Pearson's statistic for counts against a uniform
// expectation, and the degrees of freedom (len(counts)-1).
func Uniform(counts []int) (stat float64, dof int) {
	total := 0
	for _, c := range counts {
		total += c
	}
	if len(counts) == 0 || total == 0 {
		return 0, 0
	}

	expected := float64(total) / float64(len(counts))
	for _, c := range counts {
		d := float64(c) - expected
		stat += d * d / expected
	}

	return stat, len(counts) - 1
}
