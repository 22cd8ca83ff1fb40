package ffmpeg

import "fmt"

// MuxError reports that ffmpeg exited with a non-zero status. The exit
// code is the sole success signal of the external tool, so it rides along
// for the operator.
type MuxError struct {
	ExitCode int
	Output   string
}

func (e *MuxError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("ffmpeg exited with status %d writing %s", e.ExitCode, e.Output)
	}
	return fmt.Sprintf("ffmpeg exited with status %d", e.ExitCode)
}
