package pipeline

// Evaluator maps a time sample to wave quantities.
type Evaluator[S any] interface {
	Evaluate(t float64) S
}

// Mapper maps wave quantities onto frame geometry.
type Mapper[S, G any] interface {
	Map(s S) G
}

// EvaluatorFunc adapts a plain function to [Evaluator].
type EvaluatorFunc[S any] func(t float64) S

func (f EvaluatorFunc[S]) Evaluate(t float64) S { return f(t) }

// MapperFunc adapts a plain function to [Mapper].
type MapperFunc[S, G any] func(s S) G

func (f MapperFunc[S, G]) Map(s S) G { return f(s) }

// Frame is everything the renderer needs for one tick.
//
// History is the prefix of samples up to and including Index. It shares
// storage with the pipeline and is capacity-clipped, so appending to it never
// writes into later samples. Treat it as read-only.
type Frame[S, G any] struct {
	Index    int
	Time     float64
	Sample   S
	Geometry G
	History  []S
}

// Observer is notified of every frame delivered by [Pipeline.Run].
type Observer[S, G any] interface {
	OnFrame(f Frame[S, G])
}
