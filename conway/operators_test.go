package conway_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/polyhedra/conway"
	"github.com/katalvlaran/polyhedra/polyhedron"
)

type counts struct{ v, e, f int }

// operatorCase describes an operator and its V/E/F as functions of the
// input's V/E/F.
type operatorCase struct {
	prefix string
	apply  func(p *polyhedron.Polyhedron) (*polyhedron.Polyhedron, error)
	want   func(in counts) counts
	euler  func(in counts) int
}

func genus0(counts) int { return 2 }

func operatorCases() []operatorCase {
	return []operatorCase{
		{"k", func(p *polyhedron.Polyhedron) (*polyhedron.Polyhedron, error) { return conway.Kis(p, 0, 0.1) },
			func(c counts) counts { return counts{c.v + c.f, 3 * c.e, 2 * c.e} }, genus0},
		{"a", func(p *polyhedron.Polyhedron) (*polyhedron.Polyhedron, error) { return conway.Ambo(p) },
			func(c counts) counts { return counts{c.e, 2 * c.e, c.f + c.v} }, genus0},
		{"g", func(p *polyhedron.Polyhedron) (*polyhedron.Polyhedron, error) { return conway.Gyro(p) },
			func(c counts) counts { return counts{c.v + c.f + 2*c.e, 5 * c.e, 2 * c.e} }, genus0},
		{"p", func(p *polyhedron.Polyhedron) (*polyhedron.Polyhedron, error) { return conway.Propellor(p) },
			func(c counts) counts { return counts{c.v + 2*c.e, 5 * c.e, c.f + 2*c.e} }, genus0},
		{"r", func(p *polyhedron.Polyhedron) (*polyhedron.Polyhedron, error) { return conway.Reflect(p) },
			func(c counts) counts { return c }, genus0},
		{"d", func(p *polyhedron.Polyhedron) (*polyhedron.Polyhedron, error) { return conway.Dual(p) },
			func(c counts) counts { return counts{c.f, c.e, c.v} }, genus0},
		{"c", func(p *polyhedron.Polyhedron) (*polyhedron.Polyhedron, error) { return conway.Chamfer(p, 0.05) },
			func(c counts) counts { return counts{c.v + 2*c.e, 4 * c.e, c.f + c.e} }, genus0},
		{"w", func(p *polyhedron.Polyhedron) (*polyhedron.Polyhedron, error) { return conway.Whirl(p) },
			func(c counts) counts { return counts{c.v + 4*c.e, 7 * c.e, c.f + 2*c.e} }, genus0},
		{"q", func(p *polyhedron.Polyhedron) (*polyhedron.Polyhedron, error) { return conway.Quinto(p) },
			func(c counts) counts { return counts{c.v + 3*c.e, 6 * c.e, c.f + 2*c.e} }, genus0},
		{"n", func(p *polyhedron.Polyhedron) (*polyhedron.Polyhedron, error) { return conway.Inset(p, 0, 0.3, -0.1) },
			func(c counts) counts { return counts{c.v + 2*c.e, 5 * c.e, c.f + 2*c.e} }, genus0},
		{"x", func(p *polyhedron.Polyhedron) (*polyhedron.Polyhedron, error) { return conway.Extrude(p, 0) },
			func(c counts) counts { return counts{c.v + 2*c.e, 5 * c.e, c.f + 2*c.e} }, genus0},
		{"l", func(p *polyhedron.Polyhedron) (*polyhedron.Polyhedron, error) { return conway.Loft(p, 0, 0.3) },
			func(c counts) counts { return counts{c.v + 2*c.e, 5 * c.e, c.f + 2*c.e} }, genus0},
		{"H", func(p *polyhedron.Polyhedron) (*polyhedron.Polyhedron, error) { return conway.Hollow(p, 0.2, 0.1) },
			func(c counts) counts { return counts{2*c.v + 4*c.e, 12 * c.e, 6 * c.e} },
			// One tunnel per face: genus F-1.
			func(c counts) int { return 2 - 2*(c.f-1) }},
		{"P", func(p *polyhedron.Polyhedron) (*polyhedron.Polyhedron, error) { return conway.Perspectiva(p) },
			func(c counts) counts { return counts{c.v + 2*c.e, 7 * c.e, c.f + 4*c.e} }, genus0},
	}
}

// OperatorSuite runs every operator over every seed and checks the
// structural invariants shared by all of them.
type OperatorSuite struct {
	suite.Suite
	seeds []*polyhedron.Polyhedron
}

func (s *OperatorSuite) SetupTest() {
	s.seeds = seedSet(s.T())
}

func (s *OperatorSuite) TestCountsAndClosure() {
	for _, oc := range operatorCases() {
		for _, seed := range s.seeds {
			in := counts{len(seed.Vertices), seed.EdgeCount(), len(seed.Faces)}
			before := seed.Fingerprint()

			out, err := oc.apply(seed)
			s.Require().NoError(err, "%s%s", oc.prefix, seed.Name)

			s.Run(out.Name, func() {
				t := s.T()
				s.Equal(oc.prefix+seed.Name, out.Name)
				want := oc.want(in)
				s.Len(out.Vertices, want.v)
				s.Equal(want.e, out.EdgeCount())
				s.Len(out.Faces, want.f)
				s.Equal(oc.euler(in), out.Euler())
				requireClosed(t, out)
				requireUniqueVertices(t, out)
				s.Equal(before, seed.Fingerprint(), "input mutated")
			})
		}
	}
}

func (s *OperatorSuite) TestInputErrors() {
	empty := polyhedron.New("empty", nil, nil)
	short := polyhedron.New("short", nil, [][]int{{0, 1}})
	for _, oc := range operatorCases() {
		_, err := oc.apply(nil)
		s.ErrorIs(err, conway.ErrNilPolyhedron, oc.prefix)
		_, err = oc.apply(empty)
		s.ErrorIs(err, conway.ErrEmptyPolyhedron, oc.prefix)
		_, err = oc.apply(short)
		s.ErrorIs(err, polyhedron.ErrFaceTooSmall, oc.prefix)
	}
}

func TestOperatorSuite(t *testing.T) {
	suite.Run(t, new(OperatorSuite))
}
