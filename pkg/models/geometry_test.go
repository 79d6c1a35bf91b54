package models_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/shuqibi/twoup/pkg/models"
)

var _ = Describe("Geometry Models", func() {
	Context("CropBox", func() {
		It("derives width and height from its corners", func() {
			box := models.CropBox{LLX: 59.5, LLY: 84.1, URX: 535.5, URY: 756.9}

			Expect(box.Width()).To(BeNumerically("~", 476, 1e-9))
			Expect(box.Height()).To(BeNumerically("~", 672.8, 1e-9))
		})

		It("spans the full page when no margin is cropped", func() {
			box := models.CropBox{URX: 595.276, URY: 841.890}

			Expect(box.Width()).To(Equal(595.276))
			Expect(box.Height()).To(Equal(841.890))
		})
	})

	Context("Placement", func() {
		It("properly stores the transform", func() {
			p := models.Placement{Scale: 0.8844, TranslateX: 12.5, TranslateY: 7.25}

			Expect(p.Scale).To(Equal(0.8844))
			Expect(p.TranslateX).To(Equal(12.5))
			Expect(p.TranslateY).To(Equal(7.25))
		})
	})
})
