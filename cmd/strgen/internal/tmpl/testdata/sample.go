//go:build ignore

package main

var greeting = "A test message that should be hidden"

var apiToken = "hunter2-0123456789abcdef" //strgen:raw

var widePath = "C:\\ProgramData\\sample\\config.ini" //strgen:wide

const empty = ""
