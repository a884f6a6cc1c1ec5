package shader

// Program is a linked GL program object. It is owned by the caller, who
// must call Delete (or tear down the context) when done with it.
type Program struct {
	id     uint32
	driver Driver
	// names maps declared identifiers to the names the translator emitted;
	// nil when the sources were compiled as written.
	names map[string]string
}

// ID returns the driver's program object name.
func (p *Program) ID() uint32 {
	if p == nil {
		return 0
	}
	return p.id
}

// Use installs the program as part of the current rendering state.
func (p *Program) Use() {
	p.driver.UseProgram(p.id)
}

// UniformLocation returns the location of the named uniform, or -1 when the
// program has no active uniform of that name.
func (p *Program) UniformLocation(name string) int32 {
	if p == nil || p.id == 0 {
		return -1
	}
	if mapped, ok := p.names[name]; ok {
		name = mapped
	}
	return p.driver.UniformLocation(p.id, name)
}

// Delete releases the program object. Calling it more than once is a no-op.
func (p *Program) Delete() {
	if p == nil || p.id == 0 {
		return
	}
	p.driver.DeleteProgram(p.id)
	p.id = 0
}
