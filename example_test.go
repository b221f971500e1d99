package yurki_test

import (
	"fmt"

	"github.com/Aljutor/yurki"
)

func ExampleFind() {
	records := []string{"hello world", "test 123", "no match here"}

	out, err := yurki.Find(records, `\d+`, yurki.DefaultOptions())
	if err != nil {
		panic(err)
	}
	fmt.Printf("%q\n", out)
	// Output: ["" "123" ""]
}

func ExampleIsMatch() {
	records := []string{"hello world", "test 123", "no match here"}

	out, err := yurki.IsMatch(records, `\d+`, yurki.DefaultOptions())
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output: [false true false]
}

func ExampleCapture() {
	records := []string{"name: John, age: 25"}

	out, err := yurki.Capture(records, `name: (\w+), age: (\d+)`, yurki.DefaultOptions())
	if err != nil {
		panic(err)
	}
	fmt.Printf("%q\n", out[0])
	// Output: ["name: John, age: 25" "John" "25"]
}

func ExampleSplit() {
	records := []string{"a,b;c", "x,y"}

	out, err := yurki.Split(records, `[,;]`, yurki.DefaultOptions())
	if err != nil {
		panic(err)
	}
	fmt.Printf("%q\n", out)
	// Output: [["a" "b" "c"] ["x" "y"]]
}

func ExampleReplace() {
	records := []string{"name: John", "name: Jane"}

	out, err := yurki.Replace(records, `name: (\w+)`, "Hello $1",
		yurki.DefaultReplaceCount, yurki.DefaultOptions())
	if err != nil {
		panic(err)
	}
	fmt.Printf("%q\n", out)
	// Output: ["Hello John" "Hello Jane"]
}

func ExampleOptions() {
	records := []string{"HELLO", "Goodbye"}

	opts := yurki.DefaultOptions()
	opts.CaseInsensitive = true
	opts.Jobs = 4

	out, err := yurki.IsMatch(records, "hello", opts)
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output: [true false]
}
