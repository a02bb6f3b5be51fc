package formatter_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/philipp01105/dtlslog/formatter"
)

func ExampleMessage() {
	buf := formatter.NewBuffer(make([]byte, 24))

	msg, _ := formatter.Message(buf, "epoch %d\n", 1)
	fmt.Printf("%q\n", msg)

	msg, truncated := formatter.Message(buf, "record too long for %s\n", "this buffer")
	fmt.Printf("%q %v\n", msg, truncated)
	// Output:
	// "epoch 1\n"
	// "record too long fo ...\n" true
}

func ExampleHexDump() {
	buf := formatter.NewBuffer(make([]byte, 128))
	data := []byte("ClientHello, v1.2")

	formatter.HexDump(buf, "hello", data, true, func(chunk []byte) {
		fmt.Println(strings.TrimRight(string(chunk), " \n"))
	})
	// Output:
	// hello: (17 bytes):
	// 00000000 43 6C 69 65 6E 74 48 65  6C 6C 6F 2C 20 76 31 2E
	// 00000010 32
}

func ExampleWriteNarrow() {
	_ = formatter.WriteNarrow(os.Stdout, []byte{0xde, 0xad, 0xbe, 0xef})
	fmt.Println()
	// Output:
	// deadbeef
}
