// Package report orders scan records and writes them as delimited tables.
package report
