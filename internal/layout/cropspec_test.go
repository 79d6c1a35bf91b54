package layout_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/shuqibi/twoup/internal/layout"
	"github.com/shuqibi/twoup/pkg/models"
)

var a4Portrait = models.PageDimensions{Width: 595, Height: 841}

var _ = Describe("EdgeCrop", func() {
	DescribeTable("Validate",
		func(spec layout.EdgeCrop, shouldPass bool) {
			err := spec.Validate()
			if shouldPass {
				Expect(err).NotTo(HaveOccurred())
			} else {
				Expect(err).To(HaveOccurred())
			}
		},
		Entry("all zero", layout.EdgeCrop{}, true),
		Entry("typical margins", layout.EdgeCrop{Top: 10, Bottom: 10, Left: 5, Right: 5}, true),
		Entry("just below the bound", layout.EdgeCrop{Top: 49.9, Bottom: 49.9, Left: 49.9, Right: 49.9}, true),
		Entry("top at 50", layout.EdgeCrop{Top: 50}, false),
		Entry("bottom above 50", layout.EdgeCrop{Bottom: 75}, false),
		Entry("negative left", layout.EdgeCrop{Left: -1}, false),
		Entry("negative right", layout.EdgeCrop{Right: -0.1}, false),
	)

	It("derives the crop box from per-edge percentages", func() {
		spec := layout.EdgeCrop{Top: 10, Bottom: 20, Left: 5, Right: 15}
		box := spec.Resolve(a4Portrait, layout.SlotLeft)

		Expect(box.LLX).To(BeNumerically("~", 595*0.05, 1e-9))
		Expect(box.LLY).To(BeNumerically("~", 841*0.20, 1e-9))
		Expect(box.URX).To(BeNumerically("~", 595*0.85, 1e-9))
		Expect(box.URY).To(BeNumerically("~", 841*0.90, 1e-9))
	})

	It("ignores the slot", func() {
		spec := layout.EdgeCrop{Top: 10, Bottom: 10, Left: 10, Right: 10}
		Expect(spec.Resolve(a4Portrait, layout.SlotLeft)).To(Equal(spec.Resolve(a4Portrait, layout.SlotRight)))
	})

	It("keeps the box strictly ordered for any valid spec", func() {
		spec := layout.EdgeCrop{Top: 49.9, Bottom: 49.9, Left: 49.9, Right: 49.9}
		Expect(spec.Validate()).To(Succeed())

		box := spec.Resolve(a4Portrait, layout.SlotLeft)
		Expect(box.LLX).To(BeNumerically("<", box.URX))
		Expect(box.LLY).To(BeNumerically("<", box.URY))
	})
})

var _ = Describe("GutterCrop", func() {
	DescribeTable("Validate",
		func(spec layout.GutterCrop, shouldPass bool) {
			err := spec.Validate()
			if shouldPass {
				Expect(err).NotTo(HaveOccurred())
			} else {
				Expect(err).To(HaveOccurred())
			}
		},
		Entry("defaults", layout.GutterCrop{Percent: 0, Bias: 1}, true),
		Entry("bias zero", layout.GutterCrop{Percent: 10, Bias: 0}, true),
		Entry("bias at the upper bound", layout.GutterCrop{Percent: 10, Bias: 2}, true),
		Entry("crop at 50", layout.GutterCrop{Percent: 50, Bias: 1}, false),
		Entry("negative crop", layout.GutterCrop{Percent: -5, Bias: 1}, false),
		Entry("bias above 2", layout.GutterCrop{Percent: 10, Bias: 2.1}, false),
		Entry("negative bias", layout.GutterCrop{Percent: 10, Bias: -0.5}, false),
	)

	DescribeTable("keeps the total horizontal crop bias-invariant",
		func(bias float64) {
			spec := layout.GutterCrop{Percent: 10, Bias: bias}
			baseX := a4Portrait.Width * spec.Percent / 100

			box := spec.Resolve(a4Portrait, layout.SlotLeft)
			outer := box.LLX
			inner := a4Portrait.Width - box.URX

			Expect(inner + outer).To(BeNumerically("~", 2*baseX, 1e-9))
		},
		Entry("bias 0", 0.0),
		Entry("bias 0.5", 0.5),
		Entry("bias 1", 1.0),
		Entry("bias 1.5", 1.5),
		Entry("bias 2", 2.0),
	)

	It("puts the gutter margin on the right edge of the left slot", func() {
		spec := layout.GutterCrop{Percent: 10, Bias: 1.5}
		baseX := a4Portrait.Width * 0.10

		box := spec.Resolve(a4Portrait, layout.SlotLeft)
		Expect(box.LLX).To(BeNumerically("~", baseX*0.5, 1e-9))
		Expect(a4Portrait.Width - box.URX).To(BeNumerically("~", baseX*1.5, 1e-9))
	})

	It("mirrors the horizontal margins between slots", func() {
		spec := layout.GutterCrop{Percent: 10, Bias: 1.5}

		left := spec.Resolve(a4Portrait, layout.SlotLeft)
		right := spec.Resolve(a4Portrait, layout.SlotRight)

		Expect(right.LLX).To(BeNumerically("~", a4Portrait.Width-left.URX, 1e-9))
		Expect(a4Portrait.Width - right.URX).To(BeNumerically("~", left.LLX, 1e-9))
		Expect(right.LLY).To(Equal(left.LLY))
		Expect(right.URY).To(Equal(left.URY))
	})

	It("crops vertically by the base percentage on both edges", func() {
		spec := layout.GutterCrop{Percent: 12, Bias: 2}
		box := spec.Resolve(a4Portrait, layout.SlotRight)

		Expect(box.LLY).To(BeNumerically("~", 841*0.12, 1e-9))
		Expect(box.URY).To(BeNumerically("~", 841*0.88, 1e-9))
	})

	It("survives the extreme corner of the parameter space", func() {
		// crop just below 50 with the whole horizontal crop on the gutter
		// side: the outer margin reaches 0 and the box must stay ordered.
		spec := layout.GutterCrop{Percent: 49.9, Bias: 2}
		Expect(spec.Validate()).To(Succeed())

		box := spec.Resolve(a4Portrait, layout.SlotLeft)
		Expect(box.LLX).To(BeNumerically(">=", 0))
		Expect(box.LLX).To(BeNumerically("<", box.URX))
		Expect(box.LLY).To(BeNumerically("<", box.URY))
	})
})
