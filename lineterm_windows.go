package slogpattern

// LineSeparator is output by %n by default.
const LineSeparator = "\r\n"
