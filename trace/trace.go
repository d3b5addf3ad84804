package trace

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/robskie/fibvec"
	. "github.com/stevegt/goadapt"
	"github.com/stevegt/mlintro"
)

// The trace format is:
//
// name|statements
//
// where name is the run's name and statements is a binary byte
// array.  Statements are 72 bits -- 8 bits for the opcode, and 64
// bits for a big-endian float64 argument.  A trace from FromResult
// holds the initial weights and bias, then OpEpoch, OpUpdates,
// OpSlope and OpIntercept for each epoch, then the final weights and
// bias and OpHalt.

// statement size in bytes
const stmtSize = 9

type Statement struct {
	Opcode Opcode
	Arg    float64
}

// String returns a string representation of the statement.
func (statement *Statement) String() string {
	return Spf("%v %f", statement.Opcode, statement.Arg)
}

type Trace struct {
	Name       string
	Statements []*Statement
}

// String returns a string representation of the trace.
func (tr *Trace) String() string {
	var buf bytes.Buffer
	buf.WriteString(Spf("trace %s\n", tr.Name))
	for _, statement := range tr.Statements {
		buf.WriteString(Spf("%s\n", statement))
	}
	return buf.String()
}

// Clone returns a copy of the trace.
func (tr *Trace) Clone() (clone *Trace) {
	clone = &Trace{}
	clone.Name = tr.Name
	clone.Statements = make([]*Statement, len(tr.Statements))
	for i, statement := range tr.Statements {
		clone.Statements[i] = &Statement{
			Opcode: statement.Opcode,
			Arg:    statement.Arg,
		}
	}
	return
}

func New(name string) (tr *Trace) {
	Assert(!strings.Contains(name, "|"), "trace name %q contains |", name)
	tr = &Trace{Name: name}
	return
}

// FromResult records every epoch of a training result.
func FromResult(name string, res *mlintro.Result) (tr *Trace) {
	tr = New(name)
	Assert(len(res.Stats) == len(res.Lines), "%d stats, %d lines", len(res.Stats), len(res.Lines))
	for _, w := range res.Initial.Weights {
		tr.AddOp(OpWeight, w)
	}
	tr.AddOp(OpBias, res.Initial.Bias)
	for i, line := range res.Lines {
		stats := res.Stats[i]
		tr.AddOp(OpEpoch, float64(stats.Epoch))
		tr.AddOp(OpUpdates, float64(stats.Updates))
		tr.AddOp(OpSlope, line.Slope)
		tr.AddOp(OpIntercept, line.Intercept)
	}
	if res.Final != nil {
		for _, w := range res.Final.Weights {
			tr.AddOp(OpWeight, w)
		}
		tr.AddOp(OpBias, res.Final.Bias)
	}
	tr.AddOp(OpHalt, 0)
	return
}

// AddOp appends a statement to the trace given an opcode and argument.
func (tr *Trace) AddOp(opcode Opcode, arg float64) {
	statement := &Statement{
		Opcode: opcode,
		Arg:    arg,
	}
	tr.Statements = append(tr.Statements, statement)
}

// AddBytes appends a statement to the trace given a byte slice.
func (tr *Trace) AddBytes(buf []byte) (err error) {
	if len(buf) != stmtSize {
		return fmt.Errorf("statement is %d bytes, want %d", len(buf), stmtSize)
	}
	opcode := Opcode(buf[0])
	if opcode >= OpLast {
		return fmt.Errorf("invalid opcode %d", buf[0])
	}
	arg := Float64FromBytes(buf[1:])
	tr.AddOp(opcode, arg)
	return
}

// AsBytes returns the trace as a byte slice.
func (tr *Trace) AsBytes() (out []byte) {
	var buf bytes.Buffer
	_, err := buf.WriteString(tr.Name + "|")
	Ck(err)
	_, err = buf.Write(tr.StatementsAsBytes())
	Ck(err)
	out = buf.Bytes()
	return
}

// FromBytes creates a new trace from a byte slice.
func FromBytes(buf []byte) (tr *Trace, err error) {
	// the statements are binary and may contain any byte, so only
	// the first separator counts
	i := bytes.IndexByte(buf, '|')
	if i < 0 {
		return nil, fmt.Errorf("invalid trace: missing name separator")
	}
	body := buf[i+1:]
	if len(body)%stmtSize != 0 {
		return nil, fmt.Errorf("invalid trace: %d trailing bytes", len(body)%stmtSize)
	}
	tr = New(string(buf[:i]))
	err = tr.StatementsFromBytes(body)
	if err != nil {
		return nil, err
	}
	return
}

// StatementsFromBytes replaces the trace statements from a byte slice.
func (tr *Trace) StatementsFromBytes(buf []byte) (err error) {
	tr.Statements = make([]*Statement, 0, len(buf)/stmtSize)
	for i := 0; i+stmtSize <= len(buf); i += stmtSize {
		err = tr.AddBytes(buf[i : i+stmtSize])
		if err != nil {
			return fmt.Errorf("statement %d: %w", i/stmtSize, err)
		}
	}
	return
}

// StatementsAsBytes returns the trace statements as a byte slice.
func (tr *Trace) StatementsAsBytes() (outbuf []byte) {
	var buf bytes.Buffer
	for _, statement := range tr.Statements {
		// write opcode
		err := buf.WriteByte(byte(statement.Opcode))
		Ck(err)
		// write argument
		argbytes := Float64ToBytes(statement.Arg)
		n, err := buf.Write(argbytes)
		Ck(err)
		Assert(n == len(argbytes), "short write")
	}
	outbuf = buf.Bytes()
	return
}

// Lines returns the boundary lines recorded in the trace, one per
// epoch.
func (tr *Trace) Lines() (lines []mlintro.Line, err error) {
	var line *mlintro.Line
loop:
	for i, statement := range tr.Statements {
		switch statement.Opcode {
		case OpSlope:
			if line != nil {
				return nil, fmt.Errorf("statement %d: slope without intercept", i)
			}
			line = &mlintro.Line{Slope: statement.Arg}
		case OpIntercept:
			if line == nil {
				return nil, fmt.Errorf("statement %d: intercept without slope", i)
			}
			line.Intercept = statement.Arg
			lines = append(lines, *line)
			line = nil
		case OpHalt:
			break loop
		}
	}
	if line != nil {
		return nil, fmt.Errorf("trace ends with slope but no intercept")
	}
	return
}

// Updates returns the per-epoch update counts as a fibonacci-coded
// vector, along with the number of epochs in it.  Update counts are
// small, so the vector is much smaller than the trace.
func (tr *Trace) Updates() (vec *fibvec.Vector, epochs int) {
	vec = fibvec.NewVector()
	for _, statement := range tr.Statements {
		if statement.Opcode != OpUpdates {
			continue
		}
		Assert(statement.Arg >= 0 && statement.Arg == math.Trunc(statement.Arg), "update count %v", statement.Arg)
		vec.Add(int(statement.Arg))
		epochs++
	}
	return
}

type Opcode uint

const (
	// start of an epoch; arg is the epoch number
	OpEpoch Opcode = iota
	// a weight, in feature order
	OpWeight
	// the bias, following its weights
	OpBias
	// boundary slope
	OpSlope
	// boundary intercept
	OpIntercept
	// number of updates made in the epoch
	OpUpdates
	// stop processing
	OpHalt
	// keep this last
	OpLast
)

var opNames = map[Opcode]string{
	OpEpoch:     "epoch",
	OpWeight:    "weight",
	OpBias:      "bias",
	OpSlope:     "slope",
	OpIntercept: "intercept",
	OpUpdates:   "updates",
	OpHalt:      "halt",
}

func (op Opcode) String() string {
	name, ok := opNames[op]
	if !ok {
		return Spf("op%d", uint(op))
	}
	return name
}

func Float64FromBytes(bytes []byte) float64 {
	bits := binary.BigEndian.Uint64(bytes)
	float := math.Float64frombits(bits)
	return float
}

func Float64ToBytes(float float64) []byte {
	bits := math.Float64bits(float)
	bytes := make([]byte, 8)
	binary.BigEndian.PutUint64(bytes, bits)
	return bytes
}
