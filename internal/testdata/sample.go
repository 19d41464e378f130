package sample

import "fmt"

// Greeting is a constant.
const Greeting = "hello\tworld"

func Count(n int) string {
	return fmt.Sprintf("%d items", n+42)
}
