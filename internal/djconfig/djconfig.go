// Package djconfig holds the run's configuration: the CLI-derived switches
// and the script's `config op-name param-name literal` table. It is
// modeled on the teacher's config.Config (robpike.io/ivy/config): a small
// struct with getter/setter method pairs, passed around by pointer.
package djconfig

// Value is a config parameter's bound literal: a string, an integer, or a
// list of strings. It mirrors ast.Literal without importing package ast,
// since resolve is the only package that ever converts one to the other.
type Value struct {
	Str    string
	Int    int
	List   []string
	IsInt  bool
	IsList bool
}

func StringValue(s string) Value   { return Value{Str: s} }
func IntValue(i int) Value         { return Value{Int: i, IsInt: true} }
func ListValue(l []string) Value   { return Value{List: l, IsList: true} }

// Config is the threaded-everywhere run configuration.
type Config struct {
	scriptPath   string
	dictPath     string
	outputPath   string
	dedupeGlobal bool
	verbose      bool
	timing       bool
	traceOps     bool
	progress     bool
	pace         int

	params map[string]map[string]Value
}

// New returns an empty Config with sane defaults.
func New() *Config {
	return &Config{params: make(map[string]map[string]Value), pace: 0}
}

func (c *Config) ScriptPath() string     { return c.scriptPath }
func (c *Config) SetScriptPath(s string) { c.scriptPath = s }

func (c *Config) DictPath() string     { return c.dictPath }
func (c *Config) SetDictPath(s string) { c.dictPath = s }

func (c *Config) OutputPath() string     { return c.outputPath }
func (c *Config) SetOutputPath(s string) { c.outputPath = s }

func (c *Config) DedupeGlobal() bool      { return c.dedupeGlobal }
func (c *Config) SetDedupeGlobal(b bool)  { c.dedupeGlobal = b }

func (c *Config) Verbose() bool     { return c.verbose }
func (c *Config) SetVerbose(b bool) { c.verbose = b }

func (c *Config) Timing() bool     { return c.timing }
func (c *Config) SetTiming(b bool) { c.timing = b }

// TraceOps records whether -t and -v were both given. No evaluation code
// reads it; no per-operation trace line is emitted.
func (c *Config) TraceOps() bool     { return c.traceOps }
func (c *Config) SetTraceOps(b bool) { c.traceOps = b }

func (c *Config) Progress() bool     { return c.progress }
func (c *Config) SetProgress(b bool) { c.progress = b }

func (c *Config) Pace() int     { return c.pace }
func (c *Config) SetPace(n int) { c.pace = n }

// Param looks up a script-bound `config op-name param-name literal` value.
func (c *Config) Param(opName, param string) (Value, bool) {
	m, ok := c.params[opName]
	if !ok {
		return Value{}, false
	}
	v, ok := m[param]
	return v, ok
}

// SetParam binds a config directive's value, overwriting any earlier
// binding for the same (op-name, param-name) pair.
func (c *Config) SetParam(opName, param string, v Value) {
	m := c.params[opName]
	if m == nil {
		m = make(map[string]Value)
		c.params[opName] = m
	}
	m[param] = v
}

// Params returns every parameter bound for opName, for leaves (e.g. sieve,
// is_regular_word) that read more than one named parameter at once.
func (c *Config) Params(opName string) map[string]Value {
	return c.params[opName]
}
