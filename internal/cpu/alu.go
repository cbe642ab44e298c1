package cpu

// parity8 reports whether the low 8 bits of v contain an even number of
// set bits.
func parity8(v byte) bool {
	v ^= v >> 4
	v ^= v >> 2
	v ^= v >> 1
	return v&1 == 0
}

func (c *CPU) setSZP(res byte) {
	c.setFlag(FlagZ, res == 0)
	c.setFlag(FlagS, res&0x80 != 0)
	c.setFlag(FlagP, parity8(res))
}

// addA performs A <- A + value + carryIn, setting all five flags. Carry
// is the unsigned 9-bit overflow; auxiliary carry is the carry out of bit
// 3.
func (c *CPU) addA(value, carryIn byte) {
	a := c.A
	sum := uint16(a) + uint16(value) + uint16(carryIn)
	res := byte(sum)

	c.A = res
	c.setSZP(res)
	c.setFlag(FlagAC, (a&0x0F)+(value&0x0F)+carryIn > 0x0F)
	c.setFlag(FlagC, sum > 0xFF)
}

// subA performs A <- A - value - carryIn (store=false leaves A untouched,
// used by CMP). Carry is a borrow (A < src); auxiliary carry is a borrow
// into bit 4: (A & 0xF) < (src & 0xF) + carryIn.
func (c *CPU) subA(value, carryIn byte, store bool) {
	a := c.A
	diff := int(a) - int(value) - int(carryIn)
	res := byte(diff)

	if store {
		c.A = res
	}
	c.setSZP(res)
	c.setFlag(FlagAC, int(a&0x0F) < int(value&0x0F)+int(carryIn))
	c.setFlag(FlagC, diff < 0)
}

// logicalResult applies Z/S/P, clears C unconditionally, and sets AC per
// the op-specific rule.
func (c *CPU) logicalResult(res byte, ac bool) {
	c.A = res
	c.setSZP(res)
	c.setFlag(FlagC, false)
	c.setFlag(FlagAC, ac)
}

func (c *CPU) andA(value byte) {
	res := c.A & value
	// ANA quirk: AC is the OR of bit 3 of the two operands, not a real carry.
	ac := (c.A|value)&0x08 != 0
	c.logicalResult(res, ac)
}

func (c *CPU) xorA(value byte) {
	c.logicalResult(c.A^value, false)
}

func (c *CPU) orA(value byte) {
	c.logicalResult(c.A|value, false)
}

// inr8 / dcr8 apply the 8-bit increment/decrement used by INR/DCR: Z, S,
// AC, P update; C is untouched.
func (c *CPU) inr8(v byte) byte {
	res := v + 1
	c.setFlag(FlagAC, v&0x0F == 0x0F)
	c.setSZP(res)
	return res
}

func (c *CPU) dcr8(v byte) byte {
	res := v - 1
	c.setFlag(FlagAC, v&0x0F == 0)
	c.setSZP(res)
	return res
}

// addHL implements DAD: HL <- HL + rp, 17-bit carry into C. No other
// flags are touched.
func (c *CPU) addHL(rp uint16) {
	hl := c.hl()
	sum := uint32(hl) + uint32(rp)
	c.setHL(uint16(sum))
	c.setFlag(FlagC, sum > 0xFFFF)
}

// daa implements the decimal-adjust algorithm as a fixed three-step
// recipe. The 8080 has no N flag, so unlike a Z80 DAA this never needs
// to know whether the preceding op was an add or a subtract.
func (c *CPU) daa() {
	a := c.A
	lowCarry := c.flag(FlagAC) || (a&0x0F) > 9
	if lowCarry {
		a += 0x06
	}
	c.setFlag(FlagAC, lowCarry)

	highCarry := c.flag(FlagC) || (a>>4)&0x0F > 9
	if highCarry {
		a += 0x60
		c.setFlag(FlagC, true)
	}

	c.A = a
	c.setFlag(FlagZ, a == 0)
	c.setFlag(FlagS, a&0x80 != 0)
	c.setFlag(FlagP, parity8(a))
}
