package translator

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/Ssajaia/universal-data-translator/detect"
	"github.com/Ssajaia/universal-data-translator/encode"
	"github.com/Ssajaia/universal-data-translator/format"
	"github.com/Ssajaia/universal-data-translator/ir"
	"github.com/Ssajaia/universal-data-translator/parse"
	"github.com/Ssajaia/universal-data-translator/validate"
)

// State is a step of a conversion, as reported in debug logs.
type State string

const (
	Idle        State = "idle"
	Validating  State = "validating"
	Reprinting  State = "reprinting"
	Parsing     State = "parsing"
	Serializing State = "serializing"
	Done        State = "done"
	Failed      State = "failed"
)

// UnknownFormatReason is the Reason of an UnknownFormat error produced by
// detection.
const UnknownFormatReason = "Cannot detect input format. Please select format manually."

// Converter runs conversions with a fixed configuration. It is not
// modified after NewConverter returns and may be shared.
type Converter struct {
	log     *slog.Logger
	strict  bool
	xmlRoot string
	colors  *encode.Colors
}

type Option func(*Converter)

// WithLogger sets the logger receiving debug state transitions. The
// default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.log = l
		}
	}
}

// WithStrict makes validation also run complete YAML and TOML decoders.
func WithStrict(v bool) Option {
	return func(c *Converter) { c.strict = v }
}

// WithXMLRoot names the root element written by XML output.
func WithXMLRoot(name string) Option {
	return func(c *Converter) {
		if name != "" {
			c.xmlRoot = name
		}
	}
}

// WithColors highlights output for a terminal.
func WithColors(colors *encode.Colors) Option {
	return func(c *Converter) { c.colors = colors }
}

func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		log:     slog.New(slog.DiscardHandler),
		xmlRoot: "data",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func DetectFormat(text string) format.Format {
	return NewConverter().DetectFormat(text)
}

func Validate(text string, f format.Format, opts ...Option) error {
	return NewConverter(opts...).Validate(text, f)
}

func Convert(text string, from, to format.Format, opts ...Option) (string, error) {
	return NewConverter(opts...).Convert(text, from, to)
}

// DetectFormat guesses the format of text; it returns
// format.UnknownFormat when it cannot tell.
func (c *Converter) DetectFormat(text string) format.Format {
	f := detect.Detect(text)
	if c.log.Enabled(context.Background(), slog.LevelDebug) {
		sc := detect.Scores(text)
		c.log.Debug("detect", "format", f, "yaml", sc.YAML, "toml", sc.TOML, "lines", sc.Lines)
	}
	return f
}

// Validate checks that text is a plausible document in f, detecting the
// format first when f is format.AutoFormat.
func (c *Converter) Validate(text string, f format.Format) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return c.fail(&Error{Kind: EmptyInput, Direction: Input})
	}
	f, rerr := c.resolve(text, f)
	if rerr != nil {
		return c.fail(rerr)
	}
	return c.validate(text, f)
}

// Convert converts text from one format to another. from may be
// format.AutoFormat; to must be one of the four concrete formats. The
// result never ends with a newline.
func (c *Converter) Convert(text string, from, to format.Format) (string, error) {
	c.enter(Idle, "from", from, "to", to)
	c.enter(Validating)
	text = strings.TrimSpace(text)
	if text == "" {
		return "", c.fail(&Error{Kind: EmptyInput, Direction: Input})
	}
	if !to.IsConcrete() {
		return "", c.fail(unsupported(Output, to))
	}
	from, err := c.check(text, from)
	if err != nil {
		return "", err
	}

	var out string
	if from == to {
		c.enter(Reprinting, "format", from)
		out, err = c.reprint(text, from)
		if err != nil {
			return "", c.fail(newError(ParseFailed, from, err))
		}
	} else {
		node, err := c.parse(text, from)
		if err != nil {
			return "", err
		}
		if out, err = c.Encode(node, to); err != nil {
			return "", err
		}
	}
	c.enter(Done, "bytes", len(out))
	return out, nil
}

// Parse validates and parses text, returning the tree and the format it
// was read as.
func (c *Converter) Parse(text string, from format.Format) (*ir.Node, format.Format, error) {
	c.enter(Validating, "from", from)
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, from, c.fail(&Error{Kind: EmptyInput, Direction: Input})
	}
	from, err := c.check(text, from)
	if err != nil {
		return nil, from, err
	}
	node, err := c.parse(text, from)
	if err != nil {
		return nil, from, err
	}
	c.enter(Done)
	return node, from, nil
}

// Encode writes node in format to, without a trailing newline.
func (c *Converter) Encode(node *ir.Node, to format.Format) (string, error) {
	if !to.IsConcrete() {
		return "", c.fail(unsupported(Output, to))
	}
	c.enter(Serializing, "format", to)
	out, err := c.encode(node, to)
	if err != nil {
		return "", c.fail(newError(SerializeFailed, to, err))
	}
	return out, nil
}

func (c *Converter) encode(node *ir.Node, f format.Format) (string, error) {
	buf := &bytes.Buffer{}
	opts := []encode.EncodeOption{
		encode.EncodeFormat(f),
		encode.XMLRoot(c.xmlRoot),
	}
	if c.colors != nil {
		opts = append(opts, encode.EncodeColors(c.colors))
	}
	if err := encode.Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// check resolves and validates the input format of trimmed, non-empty
// text.
func (c *Converter) check(text string, from format.Format) (format.Format, error) {
	from, rerr := c.resolve(text, from)
	if rerr != nil {
		return from, c.fail(rerr)
	}
	if err := c.validate(text, from); err != nil {
		return from, err
	}
	return from, nil
}

func (c *Converter) parse(text string, from format.Format) (*ir.Node, error) {
	c.enter(Parsing, "format", from)
	node, err := parse.Parse([]byte(text), parse.ParseFormat(from))
	if err != nil {
		return nil, c.fail(newError(ParseFailed, from, err))
	}
	return node, nil
}

func unsupported(d Direction, f format.Format) *Error {
	return &Error{Kind: UnsupportedFormat, Format: f, Direction: d,
		Reason: "Unsupported " + d.String() + " format: " + f.String()}
}

// resolve turns the declared input format into a concrete one.
func (c *Converter) resolve(text string, f format.Format) (format.Format, *Error) {
	switch {
	case f == format.AutoFormat:
		f = c.DetectFormat(text)
		if f == format.UnknownFormat {
			return f, &Error{Kind: UnknownFormat, Direction: Input, Reason: UnknownFormatReason}
		}
		return f, nil
	case f == format.UnknownFormat:
		return f, &Error{Kind: UnknownFormat, Direction: Input, Reason: UnknownFormatReason}
	case !f.IsConcrete():
		return f, unsupported(Input, f)
	}
	return f, nil
}

func (c *Converter) validate(text string, f format.Format) error {
	if err := validate.Validate(text, f, validate.Strict(c.strict)); err != nil {
		e := newError(ValidationFailed, f, err)
		e.Direction = Input
		return c.fail(e)
	}
	return nil
}

func (c *Converter) enter(s State, args ...any) {
	c.log.Debug("convert", append([]any{"state", s}, args...)...)
}

func (c *Converter) fail(err *Error) error {
	c.log.Debug("convert", "state", Failed, "kind", err.Kind, "reason", err.Reason)
	return err
}

// AsError returns the *Error in err's chain, if any.
func AsError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
