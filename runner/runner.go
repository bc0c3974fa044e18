// Package runner walks a contract's declared methods in order and drives
// each one down the view or call path.
package runner

import (
	"context"
	"fmt"
	"time"

	"octest/contract"
	"octest/history"
	"octest/logx"
)

// DefaultDelay paces consecutive methods so a run does not hammer the node.
const DefaultDelay = 2 * time.Second

// Viewer performs read-only contract calls.
type Viewer interface {
	CallView(ctx context.Context, contract, method string, params []string, caller string) (string, error)
}

// Submitter submits signed state-changing calls.
type Submitter interface {
	Submit(ctx context.Context, contract, method string, params []string) (string, error)
}

// Sink receives one line per invocation outcome.
type Sink interface {
	Result(label, result string) error
	TxHash(label, hash string) error
	Error(label string, err error) error
}

// Recorder persists invocation outcomes. Optional.
type Recorder interface {
	Append(e history.Entry) error
}

type Runner struct {
	iface     *contract.Interface
	caller    string
	viewer    Viewer
	submitter Submitter
	strategy  contract.Strategy
	sink      Sink
	recorder  Recorder

	delay time.Duration
	sleep func(time.Duration)
}

type Option func(*Runner)

func WithDelay(d time.Duration) Option {
	return func(r *Runner) {
		if d >= 0 {
			r.delay = d
		}
	}
}

func WithSleep(sleep func(time.Duration)) Option {
	return func(r *Runner) { r.sleep = sleep }
}

func WithRecorder(rec Recorder) Option {
	return func(r *Runner) { r.recorder = rec }
}

func New(iface *contract.Interface, caller string, viewer Viewer, submitter Submitter,
	strategy contract.Strategy, sink Sink, opts ...Option) *Runner {
	r := &Runner{
		iface:     iface,
		caller:    caller,
		viewer:    viewer,
		submitter: submitter,
		strategy:  strategy,
		sink:      sink,
		delay:     DefaultDelay,
		sleep:     time.Sleep,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run exercises every declared method in declaration order. A method's
// failure is reported and the run moves on; only a cancelled context stops
// the walk early.
func (r *Runner) Run(ctx context.Context) error {
	for i, method := range r.iface.Methods {
		if err := ctx.Err(); err != nil {
			return err
		}
		logx.Info("RUN", "▶ ", method.Label, "...")
		r.runMethod(ctx, &r.iface.Methods[i])
		r.sleep(r.delay)
	}
	return nil
}

func (r *Runner) runMethod(ctx context.Context, method *contract.MethodSpec) {
	params, err := contract.GenerateParams(r.strategy, method.Params)
	if err != nil {
		r.reportError(method, nil, err)
		return
	}

	switch method.Kind {
	case contract.KindView:
		result, err := r.viewer.CallView(ctx, r.iface.Contract, method.Name, params, r.caller)
		if err != nil {
			r.reportError(method, params, err)
			return
		}
		logx.Info("RUN", "Result: ", result)
		if err := r.sink.Result(method.Label, result); err != nil {
			logx.Error("RUN", "report write failed: ", err)
		}
		r.record(method, params, history.Entry{Result: result})

	case contract.KindCall:
		hash, err := r.submitter.Submit(ctx, r.iface.Contract, method.Name, params)
		if err != nil {
			r.reportError(method, params, err)
			return
		}
		logx.Info("RUN", "TX Hash: ", hash)
		if err := r.sink.TxHash(method.Label, hash); err != nil {
			logx.Error("RUN", "report write failed: ", err)
		}
		r.record(method, params, history.Entry{TxHash: hash})

	default:
		logx.Warn("RUN", fmt.Sprintf("unknown method kind %q for %s, skipping", method.Kind, method.Name))
	}
}

func (r *Runner) reportError(method *contract.MethodSpec, params []string, err error) {
	logx.Error("RUN", method.Label, ": ", err)
	if sinkErr := r.sink.Error(method.Label, err); sinkErr != nil {
		logx.Error("RUN", "report write failed: ", sinkErr)
	}
	r.record(method, params, history.Entry{Err: err.Error()})
}

// record forwards an outcome skeleton to the recorder, filling in the
// method identity and timestamp.
func (r *Runner) record(method *contract.MethodSpec, params []string, e history.Entry) {
	if r.recorder == nil {
		return
	}
	e.Method = method.Name
	e.Label = method.Label
	e.Kind = method.Kind
	e.Params = params
	e.At = time.Now().Unix()
	if err := r.recorder.Append(e); err != nil {
		logx.Error("RUN", "history write failed: ", err)
	}
}
