// Package models defines the data structures produced by workbook decoding.
package models

// Record maps header text to cell text for one data row.
type Record map[string]string
