package cpu

func (c *CPU) opJMP() {
	c.PC = c.fetchWord()
	c.tick(10)
}

// Conditional JMP always consumes 10 cycles and its 2 immediate bytes;
// it only branches if the condition holds.
func (c *CPU) opJMPcc(cc byte) {
	addr := c.fetchWord()
	if c.condTrue(cc) {
		c.PC = addr
	}
	c.tick(10)
}

func (c *CPU) opCALL() {
	addr := c.fetchWord()
	c.push(c.PC)
	c.PC = addr
	c.tick(17)
}

// Conditional CALL: taken costs 17 cycles and pushes PC (already past the
// 2 immediate bytes) before jumping; not taken costs 11 cycles and simply
// advances past the immediate.
func (c *CPU) opCALLcc(cc byte) {
	addr := c.fetchWord()
	if c.condTrue(cc) {
		c.push(c.PC)
		c.PC = addr
		c.tick(17)
	} else {
		c.tick(11)
	}
}

func (c *CPU) opRET() {
	c.PC = c.pop()
	c.tick(10)
}

// Conditional RET: taken costs 11 cycles, not taken costs 5.
func (c *CPU) opRETcc(cc byte) {
	if c.condTrue(cc) {
		c.PC = c.pop()
		c.tick(11)
	} else {
		c.tick(5)
	}
}

func (c *CPU) opRST(n byte) {
	c.push(c.PC)
	c.PC = 8 * uint16(n)
	c.tick(11)
}
