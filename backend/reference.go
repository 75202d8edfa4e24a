package backend

// GenomeA builds the genome for the reference bidder A = x1*x2/x3 used
// throughout this module's end-to-end scenario tests.
func GenomeA() Genome {
	return Genome{
		{Op: OpPushInput, Operand: 0},
		{Op: OpPushInput, Operand: 1},
		{Op: OpMul},
		{Op: OpPushInput, Operand: 2},
		{Op: OpDiv},
	}
}

// GenomeB builds the genome for the reference bidder B = x1/x2*x3.
func GenomeB() Genome {
	return Genome{
		{Op: OpPushInput, Operand: 0},
		{Op: OpPushInput, Operand: 1},
		{Op: OpDiv},
		{Op: OpPushInput, Operand: 2},
		{Op: OpMul},
	}
}

// GenomeC builds the genome for the reference bidder C = x1*x2.
func GenomeC() Genome {
	return Genome{
		{Op: OpPushInput, Operand: 0},
		{Op: OpPushInput, Operand: 1},
		{Op: OpMul},
	}
}
