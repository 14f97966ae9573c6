package tune

// Format selects which line grammar Parse expects.
type Format string

const (
	// InputFormat is the grammar of the tuner's starting configuration:
	// name, type tag, value, then optional min, max, step fields.
	InputFormat Format = "input"
	// OutputFormat is the grammar of the tuned result: name, value.
	OutputFormat Format = "output"
)

// Option is one named numeric tuning parameter at a point in time.
// Min, Max and Step are only present on input records; nil means the
// source declared no bound, not zero.
type Option struct {
	Name  string   `json:"name"`
	Value float64  `json:"value"`
	Min   *float64 `json:"min,omitempty"`
	Max   *float64 `json:"max,omitempty"`
	Step  *float64 `json:"step,omitempty"`
}

// Bounded reports whether the option declared both tuning bounds.
func (o Option) Bounded() bool {
	return o.Min != nil && o.Max != nil
}
