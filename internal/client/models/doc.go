// Package models defines the chat client's wire and state types: channels,
// their colour themes, and users.
//
// Channel is the single canonical channel shape. The thin {id,name,img}
// record some endpoints and views deal with is ChannelElement, always derived
// from a Channel via Channel.Element.
package models
