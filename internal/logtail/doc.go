// Package logtail reads back the tail of fittrack's own log file.
//
// The app logs through logrus with the text formatter into a rotating file
// (see package logging). Tail reads the last N lines of that file in one
// pass using a ring buffer, so memory stays bounded by N regardless of file
// size, and Parse splits each line into time, level, message and the extra
// fields logged with it:
//
//	time="2024-03-05T09:30:00Z" level=info msg="weight recorded" date=2024-03-05 weight=70.5
//
// A missing log file is not an error; it simply has no entries. Lines that
// do not look like key=value pairs are kept with their raw text as the
// message.
package logtail
