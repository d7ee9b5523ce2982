package util

import (
	"fmt"

	"github.com/quillhq/quill-be/config"
)

func Avatar(seed string) string {
	return fmt.Sprintf("https://avatars.dicebear.com/api/bottts/%v.svg?size=%v", seed, config.AvatarSize)
}
