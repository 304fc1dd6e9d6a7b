package device

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/internet-of-plants/iop/pkg/api"
	"github.com/internet-of-plants/iop/pkg/model"
)

// PanicDataFrom describes a recovered panic. It must be called from the
// deferred function that recovered it.
func PanicDataFrom(recovered any) model.PanicData {
	data := model.PanicData{Msg: fmt.Sprint(recovered), File: "unknown", Func: "unknown"}
	if data.Msg == "" {
		data.Msg = "panic"
	}

	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	// The panicking frame is the first one past runtime.gopanic that does not
	// belong to the runtime itself.
	unwinding := false
	for {
		frame, more := frames.Next()
		if frame.Function == "runtime.gopanic" {
			unwinding = true
		} else if unwinding && !strings.HasPrefix(frame.Function, "runtime.") {
			data.File = frame.File
			data.Line = uint32(frame.Line)
			data.Func = frame.Function
			break
		}
		if !more {
			break
		}
	}

	return data
}

// ReportPanic sends data once. It never retries and never panics.
func (d *Device) ReportPanic(ctx context.Context, data model.PanicData) api.NetworkStatus {
	d.logger.Errorf("Device::ReportPanic(): %s at %s:%d (%s)", data.Msg, data.File, data.Line, data.Func)

	if err := model.ValidatePanicData(data); err != nil {
		d.logger.Errorf("Device::ReportPanic(): invalid panic data: %v", err)
		return api.StatusClientBufferOverflow
	}
	if d.token == nil {
		d.logger.Warn("Device::ReportPanic(): no auth token, panic not reported")
		return api.StatusForbidden
	}

	status := d.api.ReportPanic(ctx, *d.token, data)
	if status != api.StatusOK {
		d.logger.Errorf("Device::ReportPanic(): fail to ReportPanic(): %s", status)
	}
	return status
}

func (d *Device) recoverPanic(ctx context.Context) {
	recovered := recover()
	if recovered == nil {
		return
	}

	data := PanicDataFrom(recovered)
	defer func() {
		if again := recover(); again != nil {
			d.logger.Errorf("Device::recoverPanic(): panic while reporting a panic: %v", again)
		}
	}()
	d.ReportPanic(ctx, data)
}
