package services

import (
	"testing"

	"train-dispatch-service/internal/domain"
)

// testNetwork builds: A-B (10), B-C (10), A-C (25), plus isolated D.
// The direct A-C route is a decoy; going through B is cheaper.
func testNetwork(t *testing.T) *domain.Network {
	t.Helper()

	stations := []domain.Station{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}}
	routes := []domain.Route{
		{Name: "ab", From: "A", To: "B", TravelTimeMins: 10},
		{Name: "bc", From: "B", To: "C", TravelTimeMins: 10},
		{Name: "ac", From: "A", To: "C", TravelTimeMins: 25},
	}

	net, err := domain.NewNetwork(stations, routes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return net
}

func TestTravelMatrixShortestTimes(t *testing.T) {
	matrix := ComputeTravelMatrix(testNetwork(t))

	mins, ok := matrix.Time("A", "C")
	if !ok {
		t.Fatal("A-C should be reachable")
	}
	if mins != 20 {
		t.Fatalf("Time(A,C) = %d, want 20 (via B, not the 25 min direct route)", mins)
	}

	for _, s := range []string{"A", "B", "C", "D"} {
		if mins, ok := matrix.Time(s, s); !ok || mins != 0 {
			t.Fatalf("Time(%s,%s) = %d,%v, want 0,true", s, s, mins, ok)
		}
	}
}

func TestTravelMatrixSymmetry(t *testing.T) {
	matrix := ComputeTravelMatrix(testNetwork(t))
	stations := []string{"A", "B", "C", "D"}

	for _, a := range stations {
		for _, b := range stations {
			ab, okAB := matrix.Time(a, b)
			ba, okBA := matrix.Time(b, a)
			if okAB != okBA {
				t.Fatalf("reachability of (%s,%s) and (%s,%s) disagree", a, b, b, a)
			}
			if okAB && ab != ba {
				t.Fatalf("Time(%s,%s) = %d but Time(%s,%s) = %d", a, b, ab, b, a, ba)
			}
		}
	}
}

func TestTravelMatrixTriangleInequality(t *testing.T) {
	matrix := ComputeTravelMatrix(testNetwork(t))
	stations := []string{"A", "B", "C"}

	for _, a := range stations {
		for _, b := range stations {
			for _, c := range stations {
				ab, _ := matrix.Time(a, b)
				bc, _ := matrix.Time(b, c)
				ac, _ := matrix.Time(a, c)
				if ac > ab+bc {
					t.Fatalf("Time(%s,%s)=%d exceeds Time(%s,%s)+Time(%s,%s)=%d", a, c, ac, a, b, b, c, ab+bc)
				}
			}
		}
	}
}

func TestTravelMatrixUnreachableSentinel(t *testing.T) {
	matrix := ComputeTravelMatrix(testNetwork(t))

	if _, ok := matrix.Time("A", "D"); ok {
		t.Fatal("A-D should be unreachable")
	}
	if path := matrix.Path("A", "D"); path != nil {
		t.Fatalf("Path(A,D) = %v, want nil", path)
	}
}

func TestTravelMatrixPath(t *testing.T) {
	matrix := ComputeTravelMatrix(testNetwork(t))

	path := matrix.Path("A", "C")
	if len(path) != 2 || path[0] != "B" || path[1] != "C" {
		t.Fatalf("Path(A,C) = %v, want [B C]", path)
	}

	if path := matrix.Path("A", "A"); len(path) != 0 || path == nil {
		t.Fatalf("Path(A,A) = %v, want empty non-nil path", path)
	}
}
