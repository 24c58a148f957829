package trialplot

import "sort"

// Frequencies maps workbook base names to frequency labels.
type Frequencies map[string]string

// DefaultFrequencies returns the three sampling frequencies of the trials.
func DefaultFrequencies() Frequencies {
	return Frequencies{
		"frequency_1": "0.25Hz",
		"frequency_2": "0.125Hz",
		"frequency_3": "0.05Hz",
	}
}

// Label returns the frequency label of a workbook base name.
func (f Frequencies) Label(base string) (string, bool) {
	label, ok := f[base]
	return label, ok && label != ""
}

// Keys returns the mapped base names in sorted order.
func (f Frequencies) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
