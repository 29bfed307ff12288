package date

import "testing"

func TestHistory_AppendSorts(t *testing.T) {
	h := &History[float64]{}
	h.Append(MustParse("2020-01-01"), 2.0)
	h.Append(MustParse("1900-01-01"), 1.0)
	h.Append(MustParse("1950-01-01"), 1.5)

	var days []string
	for on := range h.Values() {
		days = append(days, on.String())
	}
	want := []string{"1900-01-01", "1950-01-01", "2020-01-01"}
	for i := range want {
		if days[i] != want[i] {
			t.Fatalf("Values() order = %v, want %v", days, want)
		}
	}
}

func TestHistory_AppendOverwrites(t *testing.T) {
	h := &History[float64]{}
	on := MustParse("2020-01-01")
	h.Append(on, 1.0)
	h.Append(on, 2.0)

	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}
	if v, ok := h.Get(on); !ok || v != 2.0 {
		t.Errorf("Get(%s) = %v, %v, want 2.0, true", on, v, ok)
	}
}

func TestHistory_ValueAsOf(t *testing.T) {
	h := &History[float64]{}
	h.Append(MustParse("1900-01-01"), 1.0)
	h.Append(MustParse("1900-02-01"), 2.0)
	h.Append(MustParse("1900-04-01"), 4.0)

	tests := []struct {
		day   string
		want  float64
		found bool
	}{
		{day: "1899-12-31", found: false},
		{day: "1900-01-01", want: 1.0, found: true},
		{day: "1900-01-15", want: 1.0, found: true},
		{day: "1900-02-01", want: 2.0, found: true},
		{day: "1900-03-15", want: 2.0, found: true},
		{day: "1900-04-01", want: 4.0, found: true},
		{day: "1950-01-01", want: 4.0, found: true},
	}
	for _, tc := range tests {
		v, ok := h.ValueAsOf(MustParse(tc.day))
		if ok != tc.found || v != tc.want {
			t.Errorf("ValueAsOf(%s) = %v, %v, want %v, %v", tc.day, v, ok, tc.want, tc.found)
		}
	}

	empty := &History[float64]{}
	if _, ok := empty.ValueAsOf(MustParse("1900-01-01")); ok {
		t.Error("ValueAsOf() on an empty history found a value")
	}
}

func TestHistory_Latest(t *testing.T) {
	h := &History[float64]{}
	if day, v := h.Latest(); !day.IsZero() || v != 0 {
		t.Errorf("Latest() on empty history = %v, %v, want zero values", day, v)
	}
	h.Append(MustParse("2020-01-01"), 1.0)
	h.Append(MustParse("2021-01-01"), 2.0)
	if day, v := h.Latest(); day.String() != "2021-01-01" || v != 2.0 {
		t.Errorf("Latest() = %v, %v, want 2021-01-01, 2.0", day, v)
	}
}
