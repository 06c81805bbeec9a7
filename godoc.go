/*
Package chatlens turns the lines of a game chat window into clickable context
menus: open a link, challenge, trade, whisper, view a profile, add a friend,
ignore or unignore the sender.

chat/line subdirectory parses and memoizes chat lines and knows nothing about
rooms.

chat subdirectory tracks room rosters and resolves which actions a line
offers, and knows nothing about windows.

The Host type is the glue between a chat window and the chat pieces.
*/
package chatlens
