// Package animation drives scope recorders frame by frame and hands the
// rendered frames to a Sink.
//
// # Tick order
//
// For every frame the Driver advances the signal parameter by one degree,
// samples the Source, registers the value with every recorder, renders all
// recorders serially into a fresh canvas, draws the logo and caption
// overlay, commits the frame to the sink and finally calls NextStep on
// every recorder.
//
// # Sinks
//
//   - PNGSink writes numbered PNG files
//   - RawSink streams raw RGBA frames to an io.Writer
//   - FFmpegSink pipes raw frames into an ffmpeg process (H.264)
//   - RecordingSink captures each frame as gg recording commands and plays
//     them back through a named recording backend
package animation
