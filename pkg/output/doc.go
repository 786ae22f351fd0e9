// Package output renders resolved paths and failures for the pathglob CLI.
//
// Text formats stream: each path is written as soon as it arrives and
// failures go to the error writer. JSON and YAML collect one
// PatternResult per pattern and write the whole document on Flush.
package output
