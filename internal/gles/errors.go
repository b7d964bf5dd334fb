package gles

import "log"

// maxDrainedErrors bounds CheckError on drivers that never clear the error
// flag (e.g. after context loss).
const maxDrainedErrors = 16

// CheckError drains the GL error queue, logging each error under label.
// It returns the first error seen, or NoError.
func CheckError(ctx Context, label string) uint32 {
	first := uint32(NoError)
	for i := 0; i < maxDrainedErrors; i++ {
		err := ctx.GetError()
		if err == NoError {
			break
		}
		if first == NoError {
			first = err
		}
		log.Printf("gl error %s: 0x%x", label, err)
	}
	return first
}
