package commands

type FussCommand struct {
	Match   MatchCommand   `command:"match" description:"Print the lines of a file or STDIN that contain a pattern"`
	Version VersionCommand `command:"version" description:"Displays fuss version" alias:"V"`
}

var Fuss FussCommand
