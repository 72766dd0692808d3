// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package reportstep_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/ensplot/reportstep"
)

type simulation struct {
	steps []int64
}

func (s simulation) ReportSteps() []int64 {
	return s.steps
}

func TestSteps(t *testing.T) {
	s := reportstep.New()

	want := simulation{
		steps: []int64{
			1262304000,
			1277942400,
			1293840000,
			1309478400,
		},
	}

	s.Add(want)
	testSteps(t, "add", s, want.ReportSteps())

	var buf bytes.Buffer
	if err := s.Write(&buf); err != nil {
		t.Fatalf("unable to write data: %v", err)
	}

	r, err := reportstep.Read(&buf)
	if err != nil {
		t.Logf("input data:\n%s\n", buf.String())
		t.Fatalf("unable to read data: %v", err)
	}

	testSteps(t, "read", r, want.ReportSteps())
}

func TestReadDates(t *testing.T) {
	in := `# report steps
2010-01-01
1277942400
2011-01-01T00:00:00Z
`
	s, err := reportstep.Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unable to read data: %v", err)
	}
	testSteps(t, "dates", s, []int64{1262304000, 1277942400, 1293840000})

	if _, err := reportstep.Read(strings.NewReader("next-year\n")); err == nil {
		t.Errorf("invalid date: expecting error")
	}
}

func TestReadMalformed(t *testing.T) {
	tests := map[string]struct {
		in   string
		want string
	}{
		"unclosed quote": {in: "\"2010-01-01\n"},
		"bare quote":     {in: "2010-01-01\n20\"11-01-01\n", want: "on line 2:"},
	}

	for name, test := range tests {
		_, err := reportstep.Read(strings.NewReader(test.in))
		if err == nil {
			t.Errorf("%s: expecting error", name)
			continue
		}
		if !strings.Contains(err.Error(), test.want) {
			t.Errorf("%s: got error %q, want %q", name, err, test.want)
		}
	}
}

func TestClosest(t *testing.T) {
	s := reportstep.New()
	for _, v := range []int64{10, 20, 40} {
		s.AddStep(v)
	}

	tests := map[string]struct {
		t    int64
		want int64
	}{
		"exact":  {t: 20, want: 20},
		"before": {t: 0, want: 10},
		"after":  {t: 100, want: 40},
		"near":   {t: 33, want: 40},
		"tie":    {t: 30, want: 20},
	}
	for name, test := range tests {
		got, ok := s.Closest(test.t)
		if !ok {
			t.Errorf("%s: closest not found", name)
			continue
		}
		if got != test.want {
			t.Errorf("%s: got %d, want %d", name, got, test.want)
		}
	}

	if _, ok := reportstep.New().Closest(10); ok {
		t.Errorf("empty: got a step, want none")
	}
}

func testSteps(t testing.TB, name string, s reportstep.Steps, want []int64) {
	t.Helper()

	got := s.Steps()
	if len(got) != len(want) {
		t.Errorf("%s length: got %d steps, want %d", name, len(got), len(want))
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("%s: got %v steps, want %v steps", name, got, want)
	}
}
