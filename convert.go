package englishcron

// Year bounds accepted by default. Quartz caps the year field at 2099.
const (
	DefaultMinYear = 1970
	DefaultMaxYear = 2099
)

// Option is a constructor function
type Option func(*Converter) error

// WithYearBounds sets the accepted range for the year field.
func WithYearBounds(min, max int) Option {
	return func(c *Converter) error {
		c.minYear = min
		c.maxYear = max
		return nil
	}
}

// Converter turns English schedule descriptions into cron expressions. The
// zero-configuration converter obtained from New is what the package-level
// Convert uses. A Converter is stateless and safe for concurrent use.
type Converter struct {
	minYear int
	maxYear int
}

// New is the constructor for Converter.
func New(opts ...Option) (*Converter, error) {
	c := &Converter{
		minYear: DefaultMinYear,
		maxYear: DefaultMaxYear,
	}
	for _, opt := range opts {
		err := opt(c)
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Convert runs the full pipeline: normalize, tokenize, recognize fragments,
// compose, validate, serialize. On failure it returns a *ParseError and no
// partial expression.
func (c *Converter) Convert(text string) (string, error) {
	tokens := tokenize(normalize(text))

	frags, err := recognize(tokens)
	if err != nil {
		return "", err
	}
	if len(frags) == 0 {
		return "", unrecognized()
	}

	rec, err := compose(frags)
	if err != nil {
		return "", err
	}
	if err := c.validate(rec); err != nil {
		return "", err
	}
	return rec.String(), nil
}

var defaultConverter, _ = New()

// Convert translates an English schedule description into a cron expression
// using the default converter.
//
//	Convert("every 15 seconds") // "0/15 * * * * ? *"
//	Convert("at 10:00 am")      // "0 0 10 * * ? *"
func Convert(text string) (string, error) {
	return defaultConverter.Convert(text)
}

// MustConvert calls Convert and panics if an error is returned.
func MustConvert(text string) string {
	expr, err := Convert(text)
	if err != nil {
		panic(err)
	}
	return expr
}
