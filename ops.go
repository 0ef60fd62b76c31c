package reactive

// Readable is satisfied by both Signal[T] and Value[T]: anything that
// can be read (recording a dependency) or sampled (not recording one).
// Go has no operator overloading, so spec.md §9's comparison/arithmetic
// design note ("expose as explicit methods … each records a dependency
// then delegates") is realized as free generic functions over this
// interface rather than methods on the signal types themselves.
type Readable[T any] interface {
	Read() T
	Sample() T
}

// Eq records a dependency on both a and b and compares their current
// values.
func Eq[T comparable](a, b Readable[T]) bool { return a.Read() == b.Read() }

// Neq records a dependency on both a and b and compares their current
// values.
func Neq[T comparable](a, b Readable[T]) bool { return a.Read() != b.Read() }

// Numeric bounds the types Add/Sub/Mul/Div accept.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func Add[T Numeric](a, b Readable[T]) T { return a.Read() + b.Read() }

func Sub[T Numeric](a, b Readable[T]) T { return a.Read() - b.Read() }

func Mul[T Numeric](a, b Readable[T]) T { return a.Read() * b.Read() }

func Div[T Numeric](a, b Readable[T]) T { return a.Read() / b.Read() }

// Integer bounds the types Mod/And/Or/Xor accept.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

func Mod[T Integer](a, b Readable[T]) T { return a.Read() % b.Read() }

func And[T Integer](a, b Readable[T]) T { return a.Read() & b.Read() }

func Or[T Integer](a, b Readable[T]) T { return a.Read() | b.Read() }

func Xor[T Integer](a, b Readable[T]) T { return a.Read() ^ b.Read() }
