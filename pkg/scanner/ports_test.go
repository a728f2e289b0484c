package scanner

import (
	"slices"
	"testing"
)

func TestNewPortRange(t *testing.T) {
	tests := []struct {
		name    string
		start   int
		end     int
		wantErr bool
	}{
		{name: "valid range", start: 1, end: 1024},
		{name: "single port", start: 80, end: 80},
		{name: "boundaries", start: 0, end: 65535},
		{name: "inverted range allowed", start: 81, end: 79},
		{name: "start negative", start: -1, end: 80, wantErr: true},
		{name: "end above max", start: 80, end: 65536, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPortRange(tt.start, tt.end)
			if tt.wantErr && err == nil {
				t.Errorf("NewPortRange(%d, %d) expected error", tt.start, tt.end)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("NewPortRange(%d, %d) unexpected error: %v", tt.start, tt.end, err)
			}
		})
	}
}

func TestPortRangeLen(t *testing.T) {
	tests := []struct {
		start int
		end   int
		want  int
	}{
		{79, 81, 3},
		{80, 80, 1},
		{0, 65535, 65536},
		{100, 80, 0}, // end < start is empty
	}

	for _, tt := range tests {
		r := PortRange{Start: tt.start, End: tt.end}
		if got := r.Len(); got != tt.want {
			t.Errorf("PortRange{%d, %d}.Len() = %d, want %d", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestPortRangePorts(t *testing.T) {
	r := PortRange{Start: 79, End: 81}
	got := slices.Collect(r.Ports())
	want := []int{79, 80, 81}
	if !slices.Equal(got, want) {
		t.Errorf("Ports() = %v, want %v", got, want)
	}
}

func TestPortRangePortsEmpty(t *testing.T) {
	r := PortRange{Start: 81, End: 79}
	if got := slices.Collect(r.Ports()); len(got) != 0 {
		t.Errorf("Expected empty iteration for inverted range, got %v", got)
	}
}

func TestPortRangePortsEarlyStop(t *testing.T) {
	r := PortRange{Start: 1, End: 100}
	count := 0
	for range r.Ports() {
		count++
		if count == 5 {
			break
		}
	}
	if count != 5 {
		t.Errorf("Expected iteration to stop after 5 ports, got %d", count)
	}
}
