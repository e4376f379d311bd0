package timeseries

import (
	"fmt"
	"strings"
)

// Series longer than this are printed as first...last
const max_printed_samples = 5

func (ts *TimeSeries[T]) sample(b *strings.Builder, format string, i int) {
	b.WriteString("(")
	fmt.Fprintf(b, format, ts.times[i])
	b.WriteString(", ")
	fmt.Fprintf(b, format, ts.values[i])
	b.WriteString(")")
}

func (ts *TimeSeries[T]) samples(b *strings.Builder, format string) {
	b.WriteString("[")
	n := ts.Size()
	if n <= max_printed_samples {
		for i := range n {
			if i > 0 {
				b.WriteString(" ")
			}
			ts.sample(b, format, i)
		}
	} else {
		ts.sample(b, format, 0)
		b.WriteString("...")
		ts.sample(b, format, n-1)
	}
	b.WriteString("]")
}

// Pretty print using format for both times and values
func (ts *TimeSeries[T]) Sprintf(format string) string {
	b := new(strings.Builder)
	b.WriteString("TimeSeries ")
	ts.samples(b, format)
	fmt.Fprintf(b, " (%d Samples)", ts.Size())
	return b.String()
}

func (ts *TimeSeries[T]) String() string {
	return ts.Sprintf("%v")
}

func (ts *TimeSeries[T]) GoString() string {
	b := new(strings.Builder)
	b.WriteString("TimeSeries(")
	ts.samples(b, "%v")
	b.WriteString(")")
	return b.String()
}
