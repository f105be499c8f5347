package viz_test

import (
	"github.com/lucasb-eyer/go-colorful"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bgcircles/internal/viz"
)

var _ = Describe("Canvas", func() {
	base := colorful.Color{R: 0, G: 0, B: 0}
	white := colorful.Color{R: 1, G: 1, B: 1}

	It("fills the cells under a disc", func() {
		c := viz.NewCanvas(10, 5, base)
		c.FillDisc(10, 10, 6, white, 0.5)

		Expect(c.Grid[2][5]).To(Equal(rune(0x28FF)))
		Expect(c.Colors[2][5].R).To(BeNumerically("~", 0.5, 1e-9))
		Expect(c.Grid[0][0]).To(Equal(rune(0x2800)))
		Expect(c.Colors[0][0]).To(Equal(base))
	})

	It("composites overlapping discs", func() {
		c := viz.NewCanvas(10, 5, base)
		c.FillDisc(10, 10, 6, white, 0.5)
		c.FillDisc(10, 10, 6, white, 0.5)
		Expect(c.Colors[2][5].R).To(BeNumerically("~", 0.75, 1e-9))
	})

	It("clips discs outside the grid", func() {
		c := viz.NewCanvas(4, 2, base)
		Expect(func() { c.FillDisc(-100, -100, 50, white, 1) }).NotTo(Panic())
		Expect(func() { c.FillDisc(1000, 1000, 50, white, 1) }).NotTo(Panic())
		Expect(c.String()).NotTo(ContainSubstring("⣿"))
	})

	It("ignores empty discs", func() {
		c := viz.NewCanvas(4, 2, base)
		c.FillDisc(2, 2, 0, white, 1)
		c.FillDisc(2, 2, 3, white, 0)
		Expect(c.String()).To(Equal("⠀⠀⠀⠀\n⠀⠀⠀⠀\n"))
	})
})

var _ = Describe("ScaleSmoother", func() {
	It("starts at the first target and eases toward new targets", func() {
		s := viz.NewScaleSmoother(60)
		Expect(s.Next(1, 1.0)).To(Equal(1.0))

		prev := 1.0
		for i := 0; i < 240; i++ {
			v := s.Next(1, 1.5)
			Expect(v).To(BeNumerically(">=", prev-1e-9))
			Expect(v).To(BeNumerically("<=", 1.5+1e-6))
			prev = v
		}
		Expect(prev).To(BeNumerically("~", 1.5, 0.01))
	})

	It("tracks circles independently", func() {
		s := viz.NewScaleSmoother(60)
		s.Next(1, 1.0)
		s.Next(2, 2.0)
		v, ok := s.Current(2)
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(2.0))
		_, ok = s.Current(3)
		Expect(ok).To(BeFalse())
	})
})
