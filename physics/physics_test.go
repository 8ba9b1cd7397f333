package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/open-island/vmath"
)

func TestCircleOverlap(t *testing.T) {
	a := NewCollider(vmath.V(0, 0), Circle(1))
	b := NewCollider(vmath.V(0.5, 0), Circle(1))

	c, ok := a.Collide(&b)
	if !ok {
		t.Fatal("Expected overlapping circles to collide")
	}
	if !vmath.ApproxEqual(c.Penetration, 1.5) {
		t.Errorf("Expected penetration 1.5, got %v", c.Penetration)
	}
	if c.Normal.Sub(vmath.V(-1, 0)).Len() > vmath.Epsilon {
		t.Errorf("Expected normal pointing from b toward a, got %v", c.Normal)
	}

	rev, _ := b.Collide(&a)
	if rev.Normal.Sub(vmath.V(1, 0)).Len() > vmath.Epsilon {
		t.Errorf("Expected reversed normal for the other side, got %v", rev.Normal)
	}
}

func TestCircleSeparated(t *testing.T) {
	a := NewCollider(vmath.V(0, 0), Circle(1))
	b := NewCollider(vmath.V(2.5, 0), Circle(1))
	if a.Check(&b) {
		t.Error("Expected separated circles not to collide")
	}

	touching := NewCollider(vmath.V(2, 0), Circle(1))
	if a.Check(&touching) {
		t.Error("Expected touching circles not to collide")
	}
}

func TestCoincidentCirclesPickAxis(t *testing.T) {
	a := NewCollider(vmath.V(1, 1), Circle(0.5))
	b := NewCollider(vmath.V(1, 1), Circle(0.5))
	c, ok := a.Collide(&b)
	if !ok {
		t.Fatal("Expected coincident circles to collide")
	}
	if !vmath.ApproxEqual(c.Normal.Len(), 1) {
		t.Errorf("Expected a unit fallback normal, got %v", c.Normal)
	}
}

func TestRectangleOverlapNormalFacesReceiver(t *testing.T) {
	a := NewCollider(vmath.V(0, 0), Square(1))
	b := NewCollider(vmath.V(0.8, 0.1), Square(1))

	c, ok := a.Collide(&b)
	if !ok {
		t.Fatal("Expected overlapping squares to collide")
	}
	if c.Normal.X >= 0 {
		t.Errorf("Expected normal pointing away from b, got %v", c.Normal)
	}
	if !vmath.ApproxEqual(c.Penetration, 0.2) {
		t.Errorf("Expected penetration 0.2, got %v", c.Penetration)
	}
}

func TestSubUnitSquaresOverlap(t *testing.T) {
	a := NewCollider(vmath.V(0, 0), Square(1))
	b := NewCollider(vmath.V(0.8, 0), Square(1))
	if !a.Check(&b) || !b.Check(&a) {
		t.Fatal("Expected unit squares 0.8 apart to collide both ways")
	}

	apart := NewCollider(vmath.V(1.2, 0), Square(1))
	if a.Check(&apart) {
		t.Error("Expected unit squares 1.2 apart not to collide")
	}
}

func TestContainedShapesCollide(t *testing.T) {
	tests := []struct {
		name       string
		outer      Collider
		inner      Collider
		wantInside bool
	}{
		{"small circle in square", NewCollider(vmath.V(3, 0), Square(1.2)), NewCollider(vmath.V(3.1, 0), Circle(0.2)), true},
		{"square in blast circle", NewCollider(vmath.V(5, 0), Circle(3)), NewCollider(vmath.V(6, 0), Square(1)), true},
		{"circle in wide rectangle", NewCollider(vmath.V(0, 0), Rectangle(3, 2)), NewCollider(vmath.V(0.2, 0.1), Circle(0.5)), true},
		{"square in large square", NewCollider(vmath.V(0, 0), Square(4)), NewCollider(vmath.V(0.5, 0.5), Square(1)), true},
	}
	for _, tt := range tests {
		c, ok := tt.inner.Collide(&tt.outer)
		if !ok {
			t.Errorf("%s: expected inner shape to collide", tt.name)
			continue
		}
		if c.Penetration <= 0 {
			t.Errorf("%s: expected positive penetration, got %v", tt.name, c.Penetration)
		}
		if !vmath.ApproxEqual(c.Normal.Len(), 1) {
			t.Errorf("%s: expected unit normal, got %v", tt.name, c.Normal)
		}
		if !tt.outer.Check(&tt.inner) {
			t.Errorf("%s: expected outer shape to report the overlap too", tt.name)
		}
		if tt.wantInside && !tt.outer.AABB().Contains(c.Point) {
			t.Errorf("%s: expected contact point inside the outer box, got %v", tt.name, c.Point)
		}
	}
}

func TestRotatedRectangleCollidesAlongDiagonal(t *testing.T) {
	bar := NewCollider(vmath.V(0, 0), Rectangle(2, 0.2))
	bar.Rotation = math.Pi / 4

	onDiagonal := NewCollider(vmath.V(0.6, 0.6), Circle(0.1))
	if !bar.Check(&onDiagonal) {
		t.Error("Expected counter-clockwise bar to reach (0.6,0.6)")
	}
	offDiagonal := NewCollider(vmath.V(0.6, -0.6), Circle(0.1))
	if bar.Check(&offDiagonal) {
		t.Error("Expected counter-clockwise bar to miss (0.6,-0.6)")
	}
}

func TestCircleAgainstWall(t *testing.T) {
	wall := NewCollider(vmath.V(5, 0), Rectangle(0.1, 10))
	body := NewCollider(vmath.V(4.7, 0), Circle(0.5))

	c, ok := body.Collide(&wall)
	if !ok {
		t.Fatal("Expected circle to touch the wall")
	}
	if c.Normal.X >= 0 {
		t.Errorf("Expected normal back into the room, got %v", c.Normal)
	}
	if c.Penetration <= 0 {
		t.Errorf("Expected positive penetration, got %v", c.Penetration)
	}
}

func TestDegenerateShapeSanitized(t *testing.T) {
	tests := []Shape{
		Rectangle(0, 1),
		Rectangle(-1, 1),
		Triangle(0),
		Circle(math.NaN()),
		{Kind: ShapeKind(9)},
	}
	for _, s := range tests {
		if !s.Degenerate() {
			t.Errorf("Expected %+v degenerate", s)
		}
		if got := s.Sanitized(); got != Circle(0) {
			t.Errorf("Expected %+v to collapse to a zero circle, got %+v", s, got)
		}
	}
	if Square(1).Degenerate() {
		t.Error("Expected unit square to be usable")
	}
}

func TestRotatedRectangleAabb(t *testing.T) {
	c := NewCollider(vmath.V(1, 1), Rectangle(2, 1))
	c.Rotation = math.Pi / 2
	box := c.AABB()
	if !vmath.ApproxEqual(box.Width(), 1) || !vmath.ApproxEqual(box.Height(), 2) {
		t.Errorf("Expected 1x2 box after quarter turn, got %vx%v", box.Width(), box.Height())
	}
	if box.Center().Sub(vmath.V(1, 1)).Len() > vmath.Epsilon {
		t.Errorf("Expected box centered at (1,1), got %v", box.Center())
	}
}

func TestTriangleCentroidAtOrigin(t *testing.T) {
	verts := Triangle(3).Vertices()
	var sum vmath.Vec2
	for _, v := range verts {
		sum = sum.Add(v)
	}
	if sum.Len() > vmath.Epsilon {
		t.Errorf("Expected vertex centroid at origin, got %v", sum.Div(3))
	}
}

func TestShapeKindText(t *testing.T) {
	var k ShapeKind
	if err := k.UnmarshalText([]byte(" Rectangle ")); err != nil || k != ShapeRectangle {
		t.Errorf("Expected rectangle, got %v (%v)", k, err)
	}
	if err := k.UnmarshalText([]byte("hexagon")); err == nil {
		t.Error("Expected unknown kind to fail")
	}
}

func TestBounceAndSlide(t *testing.T) {
	normal := vmath.V(-1, 0)

	b := NewBody(vmath.Zero, Circle(0.5), 0)
	if b.Mass != 1 {
		t.Errorf("Expected default mass 1, got %v", b.Mass)
	}
	b.Velocity = vmath.V(2, 1)
	proj := b.Bounce(normal, &BounceProfile{Bounciness: 1})
	if proj != 2 {
		t.Errorf("Expected projected speed 2, got %v", proj)
	}
	if b.Velocity != vmath.V(-2, 1) {
		t.Errorf("Expected full reflection, got %v", b.Velocity)
	}

	// Moving away is left alone
	b.Bounce(normal, &BounceProfile{Bounciness: 1})
	if b.Velocity != vmath.V(-2, 1) {
		t.Errorf("Expected no bounce while separating, got %v", b.Velocity)
	}

	b.Velocity = vmath.V(3, 1)
	b.Slide(normal)
	if b.Velocity != vmath.V(0, 1) {
		t.Errorf("Expected normal component removed, got %v", b.Velocity)
	}
}

func TestPushOutAndIntegrate(t *testing.T) {
	b := NewBody(vmath.V(1, 1), Circle(0.5), 2)
	b.PushOut(Collision{Normal: vmath.V(0, 1), Penetration: 0.25})
	if b.Collider.Position != vmath.V(1, 1.25) {
		t.Errorf("Expected push along normal, got %v", b.Collider.Position)
	}

	b.Velocity = vmath.V(2, 0)
	b.AngularVelocity = math.Pi
	b.Integrate(0.5)
	if b.Collider.Position != vmath.V(2, 1.25) {
		t.Errorf("Expected p + v*dt, got %v", b.Collider.Position)
	}
	if !vmath.ApproxEqual(b.Collider.Rotation, math.Pi/2) {
		t.Errorf("Expected rotation pi/2, got %v", b.Collider.Rotation)
	}
}

func TestSteerVelocityClampsAcceleration(t *testing.T) {
	b := NewBody(vmath.Zero, Circle(0.5), 1)
	SteerVelocity(&b, vmath.V(10, 0), 4, 0.5)
	if b.Velocity != vmath.V(2, 0) {
		t.Errorf("Expected velocity change limited to accel*dt, got %v", b.Velocity)
	}
}

func TestRepulsionIgnoresCoincident(t *testing.T) {
	profile := &RepulsionProfile{Power: 2, Weight: 1}
	f := Repulsion(vmath.Zero, []vmath.Vec2{vmath.Zero, vmath.V(-1, 0)}, profile)
	if f.Sub(vmath.V(1, 0)).Len() > vmath.Epsilon {
		t.Errorf("Expected unit push away from the single live source, got %v", f)
	}
}
