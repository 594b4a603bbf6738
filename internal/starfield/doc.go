// Package starfield implements the animated background: a fixed set of
// ambient points drifting upwards and short-lived streaks ("falling stars")
// crossing the surface on a 2:1 diagonal.
//
// A [Field] draws onto any [Surface]; the terminal canvas and the SVG
// exporter both implement it. Frames are requested from a sched.Scheduler,
// so a field runs exactly as fast as its host pumps the scheduler.
package starfield
