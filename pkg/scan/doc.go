// Package scan lexes PCL job streams into escape sequences and feeds them
// to a classifier.
//
// A Scanner splits the stream into tokens. Bytes outside escape sequences
// are skipped. Combined sequences such as <Esc>&l1o2A yield one token per
// parameter, each with the upper-case form of its parameter character.
//
// A Session drives a Scanner and a classify.Classifier over one stream: it
// tracks macro nesting depth and skips the binary payload that follows
// sequences whose value is a byte count.
package scan
