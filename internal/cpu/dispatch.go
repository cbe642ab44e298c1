package cpu

// initOps builds the 256-entry opcode dispatch table. Every byte value is
// assigned exactly once; bytes the 8080 leaves undefined decode as NOP.
// The table is built with per-family loops where the encoding is regular
// (MOV, the ALU block, INR/DCR/MVI, immediate arithmetic, RST,
// conditional branches)
// and explicit single-opcode assignments everywhere the 8080's encoding
// has a special case.
func (c *CPU) initOps() {
	for i := range c.baseOps {
		c.baseOps[i] = (*CPU).opNOP
	}

	// NOP duplicates: 0x00,08,10,18,20,28,30,38
	for _, op := range []byte{0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38} {
		c.baseOps[op] = (*CPU).opNOP
	}

	// LXI rp,d16
	c.baseOps[0x01] = func(cpu *CPU) { cpu.opLXI(0) }
	c.baseOps[0x11] = func(cpu *CPU) { cpu.opLXI(1) }
	c.baseOps[0x21] = func(cpu *CPU) { cpu.opLXI(2) }
	c.baseOps[0x31] = func(cpu *CPU) { cpu.opLXI(3) }

	// STAX / LDAX
	c.baseOps[0x02] = (*CPU).opSTAXB
	c.baseOps[0x12] = (*CPU).opSTAXD
	c.baseOps[0x0A] = (*CPU).opLDAXB
	c.baseOps[0x1A] = (*CPU).opLDAXD

	// INX / DCX rp
	c.baseOps[0x03] = func(cpu *CPU) { cpu.opINX(0) }
	c.baseOps[0x13] = func(cpu *CPU) { cpu.opINX(1) }
	c.baseOps[0x23] = func(cpu *CPU) { cpu.opINX(2) }
	c.baseOps[0x33] = func(cpu *CPU) { cpu.opINX(3) }
	c.baseOps[0x0B] = func(cpu *CPU) { cpu.opDCX(0) }
	c.baseOps[0x1B] = func(cpu *CPU) { cpu.opDCX(1) }
	c.baseOps[0x2B] = func(cpu *CPU) { cpu.opDCX(2) }
	c.baseOps[0x3B] = func(cpu *CPU) { cpu.opDCX(3) }

	// INR/DCR r,M and MVI r,d8 / M,d8 — one row per register, in encoding order.
	regOrder := []byte{0, 1, 2, 3, 4, 5, 6, 7}
	inrBase, dcrBase, mviBase := byte(0x04), byte(0x05), byte(0x06)
	for i, reg := range regOrder {
		r := reg
		c.baseOps[inrBase+byte(i)*8] = func(cpu *CPU) { cpu.opINR(r) }
		c.baseOps[dcrBase+byte(i)*8] = func(cpu *CPU) { cpu.opDCR(r) }
		c.baseOps[mviBase+byte(i)*8] = func(cpu *CPU) { cpu.opMVI(r) }
	}

	// Rotates
	c.baseOps[0x07] = (*CPU).opRLC
	c.baseOps[0x0F] = (*CPU).opRRC
	c.baseOps[0x17] = (*CPU).opRAL
	c.baseOps[0x1F] = (*CPU).opRAR

	// DAD rp
	c.baseOps[0x09] = func(cpu *CPU) { cpu.opDAD(0) }
	c.baseOps[0x19] = func(cpu *CPU) { cpu.opDAD(1) }
	c.baseOps[0x29] = func(cpu *CPU) { cpu.opDAD(2) }
	c.baseOps[0x39] = func(cpu *CPU) { cpu.opDAD(3) }

	c.baseOps[0x27] = (*CPU).opDAA
	c.baseOps[0x22] = (*CPU).opSHLD
	c.baseOps[0x2A] = (*CPU).opLHLD
	c.baseOps[0x32] = (*CPU).opSTA
	c.baseOps[0x3A] = (*CPU).opLDA
	c.baseOps[0x2F] = (*CPU).opCMA
	c.baseOps[0x37] = (*CPU).opSTC
	c.baseOps[0x3F] = (*CPU).opCMC

	// MOV r,r / r,M / M,r — 0x40-0x7F except 0x76 (HLT)
	for op := 0x40; op <= 0x7F; op++ {
		if op == 0x76 {
			continue
		}
		dst := byte((op >> 3) & 0x07)
		src := byte(op & 0x07)
		c.baseOps[op] = func(cpu *CPU) { cpu.opMOV(dst, src) }
	}
	c.baseOps[0x76] = (*CPU).opHLT

	// ALU block 0x80-0xBF: ADD ADC SUB SBB ANA XRA ORA CMP, each over 8 srcs.
	aluFamilies := []func(cpu *CPU, src byte){
		(*CPU).opADD, (*CPU).opADC, (*CPU).opSUB, (*CPU).opSBB,
		(*CPU).opANA, (*CPU).opXRA, (*CPU).opORA, (*CPU).opCMP,
	}
	for fi, fn := range aluFamilies {
		base := 0x80 + fi*8
		f := fn
		for src := byte(0); src < 8; src++ {
			s := src
			c.baseOps[base+int(src)] = func(cpu *CPU) { f(cpu, s) }
		}
	}

	// Conditional RET — 0xC0,C8,D0,D8,E0,E8,F0,F8
	for cc := byte(0); cc < 8; cc++ {
		condition := cc
		c.baseOps[0xC0+int(cc)*8] = func(cpu *CPU) { cpu.opRETcc(condition) }
	}

	// POP rp/PSW
	c.baseOps[0xC1] = func(cpu *CPU) { cpu.opPOP(0) }
	c.baseOps[0xD1] = func(cpu *CPU) { cpu.opPOP(1) }
	c.baseOps[0xE1] = func(cpu *CPU) { cpu.opPOP(2) }
	c.baseOps[0xF1] = (*CPU).opPOPPSW

	// Conditional JMP — 0xC2,CA,D2,DA,E2,EA,F2,FA
	for cc := byte(0); cc < 8; cc++ {
		condition := cc
		c.baseOps[0xC2+int(cc)*8] = func(cpu *CPU) { cpu.opJMPcc(condition) }
	}
	c.baseOps[0xC3] = (*CPU).opJMP
	c.baseOps[0xCB] = (*CPU).opJMP // documented duplicate

	// Conditional CALL — 0xC4,CC,D4,DC,E4,EC,F4,FC
	for cc := byte(0); cc < 8; cc++ {
		condition := cc
		c.baseOps[0xC4+int(cc)*8] = func(cpu *CPU) { cpu.opCALLcc(condition) }
	}

	// PUSH rp/PSW
	c.baseOps[0xC5] = func(cpu *CPU) { cpu.opPUSH(0) }
	c.baseOps[0xD5] = func(cpu *CPU) { cpu.opPUSH(1) }
	c.baseOps[0xE5] = func(cpu *CPU) { cpu.opPUSH(2) }
	c.baseOps[0xF5] = (*CPU).opPUSHPSW

	// Immediate arithmetic — ADI ACI SUI SBI ANI XRI ORI CPI
	immFamilies := []func(cpu *CPU, v byte){
		(*CPU).opADDImm, (*CPU).opADCImm, (*CPU).opSUBImm, (*CPU).opSBBImm,
		(*CPU).opANAImm, (*CPU).opXRAImm, (*CPU).opORAImm, (*CPU).opCMPImm,
	}
	for i, fn := range immFamilies {
		f := fn
		c.baseOps[0xC6+i*8] = func(cpu *CPU) { f(cpu, cpu.fetchByte()); cpu.tick(7) }
	}

	// RST n — 0xC7,CF,D7,DF,E7,EF,F7,FF
	for n := byte(0); n < 8; n++ {
		vector := n
		c.baseOps[0xC7+int(n)*8] = func(cpu *CPU) { cpu.opRST(vector) }
	}

	c.baseOps[0xC9] = (*CPU).opRET
	c.baseOps[0xD9] = (*CPU).opRET // documented duplicate
	c.baseOps[0xCD] = (*CPU).opCALL
	c.baseOps[0xDD] = (*CPU).opCALL // documented duplicate
	c.baseOps[0xED] = (*CPU).opCALL // documented duplicate
	c.baseOps[0xFD] = (*CPU).opCALL // documented duplicate

	c.baseOps[0xD3] = (*CPU).opOUT
	c.baseOps[0xDB] = (*CPU).opIN
	c.baseOps[0xE3] = (*CPU).opXTHL
	c.baseOps[0xEB] = (*CPU).opXCHG
	c.baseOps[0xE9] = (*CPU).opPCHL
	c.baseOps[0xF9] = (*CPU).opSPHL
	c.baseOps[0xF3] = (*CPU).opDI
	c.baseOps[0xFB] = (*CPU).opEI
}
