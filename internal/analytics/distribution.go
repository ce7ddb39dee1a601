package analytics

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// AgeBucketLabels lists the histogram keys in display order.
var AgeBucketLabels = [5]string{"20-29", "30-39", "40-49", "50-59", "60+"}

// AgeDistribution counts employees per age bucket, indexed like AgeBucketLabels.
type AgeDistribution [5]int

// bucketIndex maps an age to its bucket. Ages below 20 have none.
func bucketIndex(age int) (int, bool) {
	switch {
	case age >= 20 && age <= 29:
		return 0, true
	case age >= 30 && age <= 39:
		return 1, true
	case age >= 40 && age <= 49:
		return 2, true
	case age >= 50 && age <= 59:
		return 3, true
	case age >= 60:
		return 4, true
	default:
		return 0, false
	}
}

func (d *AgeDistribution) observe(age int) {
	if i, ok := bucketIndex(age); ok {
		d[i]++
	}
}

// Get returns the count for label.
func (d AgeDistribution) Get(label string) (int, bool) {
	for i, l := range AgeBucketLabels {
		if l == label {
			return d[i], true
		}
	}
	return 0, false
}

// Total is the number of bucketed employees; under-20s are not included.
func (d AgeDistribution) Total() int {
	t := 0
	for _, c := range d {
		t += c
	}
	return t
}

// MarshalJSON writes an object whose keys keep AgeBucketLabels order.
func (d AgeDistribution) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, l := range AgeBucketLabels {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(l))
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(d[i]))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (d *AgeDistribution) UnmarshalJSON(b []byte) error {
	var raw map[string]int
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	var out AgeDistribution
	for k, v := range raw {
		found := false
		for i, l := range AgeBucketLabels {
			if l == k {
				out[i] = v
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown age bucket %q", k)
		}
	}
	*d = out
	return nil
}
