// Package ffmpeg invokes the external ffmpeg binary to multiplex a clip's
// assembled video and audio streams into one container.
//
// The mux is a stream copy: both inputs pass through unencoded. Console
// output from ffmpeg streams to the operator line by line while the
// process runs, and a non-zero exit surfaces as a MuxError carrying the
// exit status. Command execution sits behind the Executor interface so
// tests can run without a real binary.
package ffmpeg
