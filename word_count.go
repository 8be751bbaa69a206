package tgmarkup

// CountText 计算标记在 Telegram 中的有效长度（UTF-16 code units）
//
// 发送给 Telegram 的是解析后的纯文本，标记符号和 URL 都存放在实体里，不计入
// 长度。因此计数就是解析后文本的 UTF-16 长度。
func CountText(markup string, syntax Syntax, opts ...Option) (int, error) {
	res, err := Parse(markup, syntax, opts...)
	if err != nil {
		return 0, err
	}
	return UTF16Len(res.Text), nil
}
