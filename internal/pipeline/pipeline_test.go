package pipeline_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gwviz/internal/pipeline"
)

type sample struct {
	t, v float64
}

type countingObserver struct {
	indices []int
}

func (o *countingObserver) OnFrame(f pipeline.Frame[sample, float64]) {
	o.indices = append(o.indices, f.Index)
}

var _ = Describe("Pipeline", func() {
	var (
		seq  pipeline.Sequencer
		p    *pipeline.Pipeline[sample, float64]
		eval = pipeline.EvaluatorFunc[sample](func(t float64) sample { return sample{t: t, v: 3 * t} })
		mapv = pipeline.MapperFunc[sample, float64](func(s sample) float64 { return s.v + 1 })
	)

	BeforeEach(func() {
		var err error
		seq, err = pipeline.NewSequencer(5, 30)
		Expect(err).NotTo(HaveOccurred())
		p = pipeline.New(seq, eval, mapv)
	})

	It("precomputes one sample per grid time", func() {
		Expect(p.Len()).To(Equal(150))
		Expect(p.Samples()).To(HaveLen(150))
		Expect(p.Samples()[0].t).To(Equal(0.0))
	})

	It("maps each sample through the mapper", func() {
		f, err := p.Frame(30)
		Expect(err).NotTo(HaveOccurred())
		Expect(f.Index).To(Equal(30))
		Expect(f.Time).To(BeNumerically("~", 1.0, 1e-12))
		Expect(f.Sample.v).To(BeNumerically("~", 3.0, 1e-12))
		Expect(f.Geometry).To(BeNumerically("~", 4.0, 1e-12))
	})

	It("stamps each frame with the sequencer time", func() {
		for i := 0; i < p.Len(); i++ {
			f, err := p.Frame(i)
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Time).To(Equal(seq.Time(i)))
			Expect(f.Sample.t).To(Equal(seq.Time(i)))
		}
	})

	It("exposes a growing history prefix", func() {
		first, _ := p.Frame(0)
		Expect(first.History).To(HaveLen(1))

		last, _ := p.Frame(149)
		Expect(last.History).To(HaveLen(150))
		Expect(last.History).To(Equal(p.Samples()))
	})

	It("keeps the history prefix from aliasing later samples", func() {
		f, _ := p.Frame(10)
		grown := append(f.History, sample{t: -1, v: -1})
		Expect(grown).To(HaveLen(12))
		Expect(p.Samples()[11].t).NotTo(Equal(-1.0))
	})

	It("rejects out of range indices", func() {
		_, err := p.Frame(150)
		Expect(errors.Is(err, pipeline.ErrFrameRange)).To(BeTrue())

		_, err = p.Frame(-1)
		Expect(err).To(MatchError(pipeline.ErrFrameRange))
	})

	It("runs frames in increasing order and notifies observers", func() {
		obs := &countingObserver{}
		p.AddObserver(obs)

		var seen []int
		err := p.Run(context.Background(), func(f pipeline.Frame[sample, float64]) bool {
			seen = append(seen, f.Index)
			return true
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(seen).To(HaveLen(150))
		Expect(obs.indices).To(Equal(seen))
		for i, idx := range seen {
			Expect(idx).To(Equal(i))
		}
	})

	It("stops when the callback declines", func() {
		count := 0
		err := p.Run(context.Background(), func(f pipeline.Frame[sample, float64]) bool {
			count++
			return f.Index < 9
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(10))
	})

	It("honours cancellation", func() {
		ctx, cancel := context.WithCancel(context.Background())
		count := 0
		err := p.Run(ctx, func(f pipeline.Frame[sample, float64]) bool {
			count++
			if f.Index == 4 {
				cancel()
			}
			return true
		})
		Expect(err).To(MatchError(context.Canceled))
		Expect(count).To(Equal(5))
	})

	It("renders in parallel with the same result as serial evaluation", func() {
		frames, err := p.Render(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(frames).To(HaveLen(p.Len()))
		for i, f := range frames {
			serial, _ := p.Frame(i)
			Expect(f.Index).To(Equal(serial.Index))
			Expect(f.Time).To(Equal(serial.Time))
			Expect(f.Geometry).To(Equal(serial.Geometry))
			Expect(f.History).To(HaveLen(i + 1))
		}
	})

	It("refuses to render under a cancelled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := p.Render(ctx)
		Expect(err).To(MatchError(context.Canceled))
	})

	Describe("NewWithSamples", func() {
		It("checks the sample count", func() {
			_, err := pipeline.NewWithSamples(seq, make([]sample, 3), mapv)
			Expect(err).To(MatchError(pipeline.ErrSampleCount))
		})

		It("copies the provided samples", func() {
			in := p.Samples()
			own := make([]sample, len(in))
			copy(own, in)

			q, err := pipeline.NewWithSamples(seq, own, mapv)
			Expect(err).NotTo(HaveOccurred())
			own[0] = sample{t: 42}
			Expect(q.Samples()[0].t).To(Equal(0.0))
		})
	})
})
