package bind

import "github.com/compound-format/go-compound/tag"

// Provider produces the final field once the attachment name is known.
// The name is used as the key unless the provider was built with an
// explicit WithKey, mirroring fields whose key is meant to echo the name
// they are declared under.
type Provider[T any] func(name string) *Field[T]

// Option configures a provider built by New.
type Option[T any] func(*config[T])

type config[T any] struct {
	key string
	def *T
}

// WithKey fixes the field's key explicitly, overriding the name later
// given to the provider.
func WithKey[T any](key string) Option[T] {
	return func(c *config[T]) { c.key = key }
}

// WithDefault supplies an initial value. It is provisioned eagerly: the
// encoded default is written into the referenced compound as soon as the
// key is known — at New when WithKey was given, otherwise at provider
// invocation — with no Write call and before any Read.
func WithDefault[T any](v T) Option[T] {
	return func(c *config[T]) { c.def = &v }
}

// New builds a field provider over ref with the given codec.
func New[T any](ref Ref, codec Codec[T], opts ...Option[T]) Provider[T] {
	cfg := &config[T]{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.key != "" && cfg.def != nil {
		ref().Put(cfg.key, codec.Encode(*cfg.def))
	}
	return func(name string) *Field[T] {
		key := cfg.key
		if key == "" {
			key = name
		}
		if cfg.key == "" && cfg.def != nil {
			ref().Put(key, codec.Encode(*cfg.def))
		}
		return &Field[T]{key: key, ref: ref, codec: codec, cache: cfg.def}
	}
}

// Kind shorthands pairing New with the matching codec.

func Byte(ref Ref, opts ...Option[int8]) Provider[int8] {
	return New(ref, ByteCodec, opts...)
}

func Short(ref Ref, opts ...Option[int16]) Provider[int16] {
	return New(ref, ShortCodec, opts...)
}

func Int(ref Ref, opts ...Option[int32]) Provider[int32] {
	return New(ref, IntCodec, opts...)
}

func Long(ref Ref, opts ...Option[int64]) Provider[int64] {
	return New(ref, LongCodec, opts...)
}

func Float(ref Ref, opts ...Option[float32]) Provider[float32] {
	return New(ref, FloatCodec, opts...)
}

func Double(ref Ref, opts ...Option[float64]) Provider[float64] {
	return New(ref, DoubleCodec, opts...)
}

func String(ref Ref, opts ...Option[string]) Provider[string] {
	return New(ref, StringCodec, opts...)
}

func Bool(ref Ref, opts ...Option[bool]) Provider[bool] {
	return New(ref, BoolCodec, opts...)
}

func Compound(ref Ref, opts ...Option[*tag.Tag]) Provider[*tag.Tag] {
	return New(ref, CompoundCodec, opts...)
}
