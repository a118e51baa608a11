package extrema_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"valleyviz/internal/dataset"
	"valleyviz/internal/extrema"
)

// fromValues builds a dataset with unit t spacing over the given |Z| column.
func fromValues(values ...float64) dataset.Dataset {
	ds := make(dataset.Dataset, len(values))
	for i, v := range values {
		ds[i] = dataset.Sample{T: float64(i), AbsZ: v}
	}
	return ds
}

var _ = Describe("Detect", func() {
	It("rejects empty datasets", func() {
		_, err := extrema.Detect(dataset.Dataset{})
		Expect(err).To(MatchError(dataset.ErrEmptyDataset))
	})

	It("finds no extrema with fewer than three samples", func() {
		for _, ds := range []dataset.Dataset{fromValues(1), fromValues(1, 2)} {
			report, err := extrema.Detect(ds)
			Expect(err).NotTo(HaveOccurred())
			Expect(report.Points).To(BeEmpty())
		}
	})

	It("finds exactly one mountain in a rise-then-fall sequence", func() {
		report, err := extrema.Detect(fromValues(1, 2, 3, 2, 1))
		Expect(err).NotTo(HaveOccurred())

		Expect(report.Mountains()).To(HaveLen(1))
		Expect(report.Mountains()[0].Index).To(Equal(2))
		Expect(report.Valleys()).To(BeEmpty())
	})

	It("finds exactly one valley in a fall-then-rise sequence", func() {
		report, err := extrema.Detect(fromValues(3, 2, 0.5, 2, 3))
		Expect(err).NotTo(HaveOccurred())

		Expect(report.Valleys()).To(HaveLen(1))
		Expect(report.Valleys()[0].Index).To(Equal(2))
		Expect(report.Mountains()).To(BeEmpty())
	})

	It("never classifies boundary indices", func() {
		report, err := extrema.Detect(fromValues(5, 1, 5, 1, 5))
		Expect(err).NotTo(HaveOccurred())

		for _, p := range report.Points {
			Expect(p.Index).To(BeNumerically(">", 0))
			Expect(p.Index).To(BeNumerically("<", 4))
		}
	})

	It("classifies nothing on a flat curve", func() {
		report, err := extrema.Detect(fromValues(2, 2, 2, 2, 2))
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Points).To(BeEmpty())
	})

	It("skips plateau shoulders under strict inequality", func() {
		// Rises to a two-sample plateau, then falls: no strict extremum.
		report, err := extrema.Detect(fromValues(1, 3, 3, 1))
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Points).To(BeEmpty())
	})

	It("satisfies the strict-neighbor property for every reported point", func() {
		ds := fromValues(4, 1, 3, 0.2, 5, 2, 6, 1, 4)
		report, err := extrema.Detect(ds)
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Points).NotTo(BeEmpty())

		seen := map[int]bool{}
		for _, p := range report.Points {
			Expect(seen[p.Index]).To(BeFalse(), "index reported twice")
			seen[p.Index] = true

			prev := ds[p.Index-1].AbsZ
			next := ds[p.Index+1].AbsZ
			cur := ds[p.Index].AbsZ
			if p.Kind == extrema.Mountain {
				Expect(cur).To(BeNumerically(">", prev))
				Expect(cur).To(BeNumerically(">", next))
			} else {
				Expect(cur).To(BeNumerically("<", prev))
				Expect(cur).To(BeNumerically("<", next))
			}
		}
	})

	It("alternates valleys and mountains on an oscillating curve", func() {
		report, err := extrema.Detect(fromValues(1, 3, 1, 3, 1, 3, 1))
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Mountains()).To(HaveLen(3))
		Expect(report.Valleys()).To(HaveLen(2))
	})
})

var _ = Describe("ConfirmedValleys", func() {
	It("keeps only valleys carrying a usable spacing", func() {
		ds := fromValues(3, 0.1, 3, 0.1, 3, 0.1, 3)
		ds[3].Spacing = 2.0 // confirmed
		// ds[1] and ds[5] left unannotated

		report, err := extrema.Detect(ds)
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Valleys()).To(HaveLen(3))

		confirmed := extrema.ConfirmedValleys(report)
		Expect(confirmed).To(HaveLen(1))
		Expect(confirmed[0].Index).To(Equal(3))
	})
})

var _ = Describe("AnnotateSpacings", func() {
	It("writes the gap to the previous valley on each valley row", func() {
		ds := fromValues(3, 0.1, 3, 0.1, 3, 0.1, 3)
		report, err := extrema.Detect(ds)
		Expect(err).NotTo(HaveOccurred())

		annotated := extrema.AnnotateSpacings(ds, report)

		Expect(annotated[1].Spacing).To(BeZero()) // first valley, no predecessor
		Expect(annotated[3].Spacing).To(BeNumerically("~", 2.0, 1e-12))
		Expect(annotated[5].Spacing).To(BeNumerically("~", 2.0, 1e-12))
	})

	It("does not mutate the input dataset", func() {
		ds := fromValues(3, 0.1, 3, 0.1, 3)
		report, err := extrema.Detect(ds)
		Expect(err).NotTo(HaveOccurred())

		_ = extrema.AnnotateSpacings(ds, report)
		for _, s := range ds {
			Expect(s.Spacing).To(BeZero())
		}
	})
})

var _ = Describe("InWindow", func() {
	It("filters points by t range inclusively", func() {
		ds := fromValues(1, 3, 1, 3, 1)
		report, err := extrema.Detect(ds)
		Expect(err).NotTo(HaveOccurred())

		Expect(report.InWindow(1, 3)).To(HaveLen(3))
		Expect(report.InWindow(2, 2)).To(HaveLen(1))
		Expect(report.InWindow(10, 20)).To(BeEmpty())
	})
})
