package actor

import "testing"

// testField builds a Field from a rune layout: '#' is a wall, anything
// else is open. Out-of-bounds reads as wall.
type testField struct {
	rows []string
}

func (tf testField) IsWall(x, y int) bool {
	if y < 0 || y >= len(tf.rows) || x < 0 || x >= len(tf.rows[y]) {
		return true
	}
	return tf.rows[y][x] == '#'
}

var openRoom = testField{rows: []string{
	"#######",
	"#     #",
	"#     #",
	"#     #",
	"#######",
}}

func TestStepsAccumulation(t *testing.T) {
	tests := []struct {
		name     string
		speed    float64
		ticks    int
		expected int
	}{
		{"quarter speed", 0.25, 10, 2},
		{"half speed", 0.5, 7, 3},
		{"full speed", 1.0, 5, 5},
		{"faster than one", 1.5, 4, 6},
		{"zero speed", 0.0, 100, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := &Mover{Speed: tc.speed}
			total := 0
			for i := 0; i < tc.ticks; i++ {
				total += m.Steps()
			}
			if total != tc.expected {
				t.Errorf("total steps = %d, expected %d", total, tc.expected)
			}
		})
	}
}

func TestStepsIndependentOfFragmentation(t *testing.T) {
	// The same accumulated speed yields the same step count however it is
	// split across ticks.
	steady := &Mover{Speed: 0.25}
	bursty := &Mover{}

	steadyTotal := 0
	for i := 0; i < 8; i++ {
		steadyTotal += steady.Steps()
	}

	burstyTotal := 0
	for i := 0; i < 8; i++ {
		if i%2 == 0 {
			bursty.Speed = 0.5
		} else {
			bursty.Speed = 0
		}
		burstyTotal += bursty.Steps()
	}

	if steadyTotal != burstyTotal {
		t.Errorf("steady %d steps vs bursty %d steps", steadyTotal, burstyTotal)
	}
}

func TestAdvanceBlockedByWall(t *testing.T) {
	m := &Mover{}
	m.ResetAt(1, 1)
	m.Dir = DirUp

	if m.Advance(openRoom) {
		t.Error("Advance into wall should fail")
	}
	if m.X != 1 || m.Y != 1 {
		t.Errorf("blocked mover moved to (%v, %v)", m.X, m.Y)
	}

	m.Dir = DirRight
	if !m.Advance(openRoom) {
		t.Error("Advance into open cell should succeed")
	}
	if m.X != 2 || m.Y != 1 {
		t.Errorf("mover at (%v, %v), expected (2, 1)", m.X, m.Y)
	}
}

func TestPlayerQueuedTurn(t *testing.T) {
	p := NewPlayer(1, 1)
	p.Speed = 1.0
	p.Dir = DirRight

	// Queue a turn that is blocked right now; the player keeps going right.
	p.Queue(DirUp)
	p.Update(openRoom)
	if x, y := p.Cell(); x != 2 || y != 1 {
		t.Fatalf("player at (%d, %d), expected (2, 1)", x, y)
	}
	if p.Dir != DirRight {
		t.Errorf("blocked turn changed direction to %v", p.Dir)
	}

	// Queue a turn that is open; it takes effect at the next step.
	p.Queue(DirDown)
	p.Update(openRoom)
	if p.Dir != DirDown {
		t.Errorf("open turn not taken, direction is %v", p.Dir)
	}
	if x, y := p.Cell(); x != 2 || y != 2 {
		t.Errorf("player at (%d, %d), expected (2, 2)", x, y)
	}
}

func TestPlayerStallsAgainstWall(t *testing.T) {
	p := NewPlayer(1, 1)
	p.Speed = 1.0
	p.Dir = DirLeft

	for i := 0; i < 5; i++ {
		p.Update(openRoom)
	}
	if x, y := p.Cell(); x != 1 || y != 1 {
		t.Errorf("player pushed through wall to (%d, %d)", x, y)
	}
}
