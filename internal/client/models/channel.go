package models

// Channel is a chat channel as returned by GET /protected/user/channels and
// accepted by PUT /protected/channel/{id}/update_metadata.
type Channel struct {
	// ID is assigned by the server on creation.
	ID int64 `json:"id"`

	Name string `json:"name"`

	// Img is an image reference (URL or server-side asset name).
	Img string `json:"img"`

	// Creator is the username of the user who created the channel.
	Creator string `json:"creator"`

	Theme ChannelTheme `json:"theme"`

	// Users lists channel members.
	Users []User `json:"users"`
}

// ChannelElement is the thin projection of a Channel used by channel lists.
type ChannelElement struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Img  string `json:"img"`
}

// NewLocalChannel builds the record the client keeps right after creating a
// channel and before the next list refresh: only id, name and img are known,
// creator, theme and members stay empty.
func NewLocalChannel(id int64, name, img string) Channel {
	return Channel{
		ID:    id,
		Name:  name,
		Img:   img,
		Users: []User{},
	}
}

func (c Channel) Element() ChannelElement {
	return ChannelElement{ID: c.ID, Name: c.Name, Img: c.Img}
}

// FindChannel returns the channel with the given id.
func FindChannel(channels []Channel, id int64) (Channel, bool) {
	for _, c := range channels {
		if c.ID == id {
			return c, true
		}
	}
	return Channel{}, false
}
