// Package cli implements the textkit command line.
//
//	textkit normalize slug "Hello World!"       hello-world
//	textkit convert base ff --from 16 --to 2    11111111
//	textkit convert alpha 27                    ab
//	textkit translit --lang de Müller           Mueller
//	textkit format number 1234.5 -l de          1.234,5
//	textkit format time now --style since       just now
//	textkit serve --addr :8080
package cli
