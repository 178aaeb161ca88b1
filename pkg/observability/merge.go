package observability

import "github.com/aretw0/cascade/pkg/dispatch"

// MergeHooks returns hooks that call every non-nil callback of each input in
// argument order.
func MergeHooks[A any](all ...dispatch.Hooks[A]) dispatch.Hooks[A] {
	var (
		onDispatch []func(A)
		onCancel   []func(A, int)
		onApply    []func(A, int, bool)
		onInject   []func(A, int, int)
		onComplete []func(A, dispatch.Outcome, error)
	)
	for _, h := range all {
		if h.OnDispatch != nil {
			onDispatch = append(onDispatch, h.OnDispatch)
		}
		if h.OnCancel != nil {
			onCancel = append(onCancel, h.OnCancel)
		}
		if h.OnApply != nil {
			onApply = append(onApply, h.OnApply)
		}
		if h.OnInject != nil {
			onInject = append(onInject, h.OnInject)
		}
		if h.OnComplete != nil {
			onComplete = append(onComplete, h.OnComplete)
		}
	}

	var merged dispatch.Hooks[A]
	if len(onDispatch) > 0 {
		merged.OnDispatch = func(a A) {
			for _, fn := range onDispatch {
				fn(a)
			}
		}
	}
	if len(onCancel) > 0 {
		merged.OnCancel = func(a A, depth int) {
			for _, fn := range onCancel {
				fn(a, depth)
			}
		}
	}
	if len(onApply) > 0 {
		merged.OnApply = func(a A, depth int, changed bool) {
			for _, fn := range onApply {
				fn(a, depth, changed)
			}
		}
	}
	if len(onInject) > 0 {
		merged.OnInject = func(a A, depth, n int) {
			for _, fn := range onInject {
				fn(a, depth, n)
			}
		}
	}
	if len(onComplete) > 0 {
		merged.OnComplete = func(a A, o dispatch.Outcome, err error) {
			for _, fn := range onComplete {
				fn(a, o, err)
			}
		}
	}
	return merged
}
