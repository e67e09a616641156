package main

import (
	"fmt"
	"os"

	"github.com/magiscan/magiscan/cmd/cmd"
	"github.com/magiscan/magiscan/internal/env"
)

func main() {
	PrintLogo()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func PrintLogo() {
	fmt.Println(" _ __ ___   __ _  __ _(_)___  ___ __ _ _ __")
	fmt.Println("| '_ ` _ \\ / _` |/ _` | / __|/ __/ _` | '_ \\")
	fmt.Println("| | | | | | (_| | (_| | \\__ \\ (_| (_| | | | |")
	fmt.Println("|_| |_| |_|\\__,_|\\__, |_|___/\\___\\__,_|_| |_|")
	fmt.Println("                 |___/")
	fmt.Println()
	fmt.Println("File type identification and mismatch detection")
	fmt.Println()
	fmt.Printf("Version:   %s\n", env.Version)
	fmt.Printf("Commit:    %s\n", env.CommitHash)
	fmt.Printf("Build Time: %s\n", env.BuildTime)
	fmt.Println(" ")
}
