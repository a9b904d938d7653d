// Package gibberify translates text into invented "gibberish" languages.
//
// Every word is split into syllables by a hyphenation oracle, each syllable
// is replaced through a per-language translation table, and the original
// capitalization is restored. Syllables missing from the table are replaced
// by a syllable picked from the table's keys.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/ZaguanLabs/gibberify"
//	)
//
//	func main() {
//	    dicts, err := gibberify.DefaultDictionaries()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    t, err := dicts.NewTranslator("en", "orc")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    out, err := t.Translate(context.Background(), "Hello World")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(out)
//	}
package gibberify
