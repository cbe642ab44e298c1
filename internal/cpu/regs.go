package cpu

// readReg and writeReg decode the 3-bit register field used throughout
// the opcode map (MOV, MVI, INR/DCR, the ALU block): 0=B 1=C 2=D 3=E 4=H
// 5=L 6=M (mem[HL]) 7=A.
func (c *CPU) readReg(r byte) byte {
	switch r {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.H
	case 5:
		return c.L
	case 6:
		return c.readMem(c.hl())
	default:
		return c.A
	}
}

func (c *CPU) writeReg(r byte, v byte) {
	switch r {
	case 0:
		c.B = v
	case 1:
		c.C = v
	case 2:
		c.D = v
	case 3:
		c.E = v
	case 4:
		c.H = v
	case 5:
		c.L = v
	case 6:
		c.writeMem(c.hl(), v)
	default:
		c.A = v
	}
}

// rpGet/rpSet decode the 2-bit register-pair field (00=BC 01=DE 10=HL
// 11=SP) used by LXI/DAD/INX/DCX.
func (c *CPU) rpGet(rp byte) uint16 {
	switch rp {
	case 0:
		return c.bc()
	case 1:
		return c.de()
	case 2:
		return c.hl()
	default:
		return c.SP
	}
}

func (c *CPU) rpSet(rp byte, v uint16) {
	switch rp {
	case 0:
		c.setBC(v)
	case 1:
		c.setDE(v)
	case 2:
		c.setHL(v)
	default:
		c.SP = v
	}
}

// condTrue decodes the 3-bit condition field used by conditional
// JMP/CALL/RET: 0=NZ 1=Z 2=NC 3=C 4=PO 5=PE 6=P 7=M.
func (c *CPU) condTrue(cc byte) bool {
	switch cc {
	case 0:
		return !c.flag(FlagZ)
	case 1:
		return c.flag(FlagZ)
	case 2:
		return !c.flag(FlagC)
	case 3:
		return c.flag(FlagC)
	case 4:
		return !c.flag(FlagP)
	case 5:
		return c.flag(FlagP)
	case 6:
		return !c.flag(FlagS)
	default:
		return c.flag(FlagS)
	}
}
