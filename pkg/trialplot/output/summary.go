package output

import (
	"fmt"
	"io"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/montanaflynn/stats"
	"github.com/ukaji3/trialplot-go/pkg/trialplot/models"
)

// Summary holds descriptive statistics of one numeric column.
type Summary struct {
	Column string
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	StdDev float64
}

// Summarize computes a Summary for every column of t holding at least one
// number. Empty and text cells are ignored.
func Summarize(t *models.Table) ([]Summary, error) {
	var out []Summary
	for _, c := range t.Columns {
		data := numbers(c)
		if len(data) == 0 {
			continue
		}
		s, err := summarize(c.Name, data)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", c.Name, err)
		}
		out = append(out, s)
	}
	return out, nil
}

func summarize(name string, data []float64) (Summary, error) {
	s := Summary{Column: name, Count: len(data)}

	var err error
	if s.Min, err = stats.Min(data); err != nil {
		return s, err
	}
	if s.Max, err = stats.Max(data); err != nil {
		return s, err
	}
	if s.Mean, err = stats.Mean(data); err != nil {
		return s, err
	}
	if s.Median, err = stats.Median(data); err != nil {
		return s, err
	}
	if s.StdDev, err = stats.StandardDeviation(data); err != nil {
		return s, err
	}
	return s, nil
}

func numbers(c models.Column) []float64 {
	out := make([]float64, 0, len(c.Cells))
	for _, v := range c.Numbers() {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// WriteSummary writes one CSV row per summary.
func WriteSummary(w io.Writer, summaries []Summary) error {
	n := len(summaries)
	names := make([]string, n)
	counts := make([]int, n)
	cols := map[string][]string{}
	fields := []string{"min", "max", "mean", "median", "std"}
	for _, f := range fields {
		cols[f] = make([]string, n)
	}
	for i, s := range summaries {
		names[i] = s.Column
		counts[i] = s.Count
		cols["min"][i] = FormatFloat(s.Min)
		cols["max"][i] = FormatFloat(s.Max)
		cols["mean"][i] = FormatFloat(s.Mean)
		cols["median"][i] = FormatFloat(s.Median)
		cols["std"][i] = FormatFloat(s.StdDev)
	}

	list := []series.Series{
		series.New(names, series.String, "column"),
		series.New(counts, series.Int, "count"),
	}
	for _, f := range fields {
		list = append(list, series.New(cols[f], series.String, f))
	}
	df := dataframe.New(list...)
	if df.Err != nil {
		return fmt.Errorf("build dataframe: %w", df.Err)
	}
	return df.WriteCSV(w)
}
