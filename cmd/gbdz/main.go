package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/gluk256/gbdz/crutils"
)

var inputReader = bufio.NewReader(os.Stdin)

func help() {
	fmt.Println("gbdz encrypts/decrypts a message with a password into a GBD7Z envelope")
	fmt.Println("USAGE: gbdz [flags] [src]")
	fmt.Println("\t e encrypt (default: encrypt, then decrypt back as a self-check)")
	fmt.Println("\t d decrypt")
	fmt.Println("\t s secure password input")
	fmt.Println("\t h help")
}

func readLine(prompt string) string {
	fmt.Print(prompt)
	s, err := inputReader.ReadString('\n')
	if err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		os.Exit(1)
	}
	return strings.TrimRight(s, "\r\n")
}

func getPassword(secure bool) []byte {
	fmt.Print("please enter the password: ")
	if secure {
		pass, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			fmt.Printf("Error: %s\n", err.Error())
			os.Exit(1)
		}
		return pass
	}
	return []byte(readLine(""))
}

func main() {
	var src, flags string

	if len(os.Args) == 2 {
		flags = os.Args[1]
	} else if len(os.Args) == 3 {
		flags = os.Args[1]
		src = os.Args[2]
	} else if len(os.Args) > 3 {
		fmt.Printf("Error: wrong number of arguments [%d]\n", len(os.Args))
		return
	}

	if strings.Contains(flags, "?") || strings.Contains(flags, "h") {
		help()
		return
	}

	secure := strings.Contains(flags, "s")
	decrypt := strings.Contains(flags, "d")
	encryptOnly := strings.Contains(flags, "e")

	if decrypt {
		if len(src) == 0 {
			src = readLine("envelope: ")
		}
		key := getPassword(secure)
		res, err := crutils.Decrypt(key, src)
		crutils.WipeData(key)
		if err != nil {
			fmt.Printf("Error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("Decrypted: %s\n", string(res))
		return
	}

	if len(src) == 0 {
		src = readLine("message: ")
	}
	key := getPassword(secure)
	envelope, err := crutils.Encrypt(key, []byte(src))
	if err != nil {
		crutils.WipeData(key)
		fmt.Printf("Error: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("Encrypted: %s\n", envelope)

	if !encryptOnly {
		res, err := crutils.Decrypt(key, envelope)
		if err != nil {
			crutils.WipeData(key)
			fmt.Printf("Error: self-check failed: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("Decrypted: %s\n", string(res))
	}
	crutils.WipeData(key)
}
