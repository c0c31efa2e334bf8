package exec

// config holds the configuration for starting a process.
// It distinguishes between global settings (set at creation time) and local settings (set per-start).
type config struct {
	// Global settings (set at creation time)
	globalEnv         map[string]string
	globalDir         string
	globalInheritEnv  bool
	globalPassthrough bool

	// Local settings (set per-start, override global)
	localEnv         map[string]string
	localDir         string
	localInheritEnv  *bool
	localPassthrough *bool
}

// newConfig creates a new configuration with default values.
func newConfig() *config {
	return &config{
		globalEnv: make(map[string]string),
		localEnv:  make(map[string]string),
	}
}

// clone creates a deep copy of the configuration.
func (c *config) clone() *config {
	clone := &config{
		globalEnv:         copyEnv(c.globalEnv),
		globalDir:         c.globalDir,
		globalInheritEnv:  c.globalInheritEnv,
		globalPassthrough: c.globalPassthrough,
		localEnv:          copyEnv(c.localEnv),
		localDir:          c.localDir,
		localInheritEnv:   copyBool(c.localInheritEnv),
		localPassthrough:  copyBool(c.localPassthrough),
	}
	return clone
}

func copyEnv(env map[string]string) map[string]string {
	out := make(map[string]string, len(env))
	for k, v := range env {
		out[k] = v
	}
	return out
}

func copyBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}

// effectiveEnv returns the effective environment variables, merging global and local settings.
// Local settings override global settings.
func (c *config) effectiveEnv() map[string]string {
	env := copyEnv(c.globalEnv)
	for k, v := range c.localEnv {
		env[k] = v
	}
	return env
}

// effectiveDir returns the effective working directory.
func (c *config) effectiveDir() string {
	if c.localDir != "" {
		return c.localDir
	}
	return c.globalDir
}

// effectiveInheritEnv returns whether to inherit environment variables.
func (c *config) effectiveInheritEnv() bool {
	if c.localInheritEnv != nil {
		return *c.localInheritEnv
	}
	return c.globalInheritEnv
}

// effectivePassthrough returns whether stderr is streamed as well as captured.
func (c *config) effectivePassthrough() bool {
	if c.localPassthrough != nil {
		return *c.localPassthrough
	}
	return c.globalPassthrough
}

// resetLocal resets all local settings.
// This is called after each Start() so local settings don't carry over.
func (c *config) resetLocal() {
	c.localEnv = make(map[string]string)
	c.localDir = ""
	c.localInheritEnv = nil
	c.localPassthrough = nil
}
