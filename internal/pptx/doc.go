// Package pptx handles the document container: a zip archive whose
// slide bodies live under ppt/slides as slideN.xml. The package reads
// the full archive into memory, lets slide bodies be replaced, and
// writes a complete new archive in one pass so no partially written
// slide file can ever be observed.
package pptx
