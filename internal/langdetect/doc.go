// Package langdetect turns labeled training text into language detection samples.
//
// A training file holds one sample per line: a language code, a tab, and the text.
//
//	en	The quick brown fox
//	de	Der schnelle braune Fuchs
//
// Lines whose label is missing are skipped by returning no sample and no error.
// Reading past the end of the source is an error.
package langdetect
